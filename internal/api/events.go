package api

import (
	"fmt"
	"strconv"
)

// ListEvents returns one page of events matching the filter.
func (c *Client) ListEvents(filter EventFilter) (Page[Event], error) {
	query := pageQuery(filter.Page, filter.Size)
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.EventType != "" {
		query.Set("event_type", filter.EventType)
	}
	if filter.ActiveOnly {
		query.Set("is_active", "true")
	}

	var page Page[Event]
	if err := c.GetWithQuery("/events", query, &page); err != nil {
		return Page[Event]{}, fmt.Errorf("failed to list events: %w", err)
	}
	return page, nil
}

// GetEvent returns a single event by ID.
func (c *Client) GetEvent(id int) (*Event, error) {
	var event Event
	if err := c.Get("/events/"+strconv.Itoa(id), &event); err != nil {
		return nil, fmt.Errorf("failed to get event %d: %w", id, err)
	}
	return &event, nil
}

// CreateEvent creates a new event.
func (c *Client) CreateEvent(req CreateEventRequest) (*Event, error) {
	var event Event
	if err := c.Post("/events", req, &event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &event, nil
}

// UpdateEvent updates an existing event.
func (c *Client) UpdateEvent(id int, req UpdateEventRequest) (*Event, error) {
	var event Event
	if err := c.Put("/events/"+strconv.Itoa(id), req, &event); err != nil {
		return nil, fmt.Errorf("failed to update event %d: %w", id, err)
	}
	return &event, nil
}

// DeleteEvent deletes an event.
func (c *Client) DeleteEvent(id int) error {
	if err := c.Delete("/events/" + strconv.Itoa(id)); err != nil {
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}
	return nil
}
