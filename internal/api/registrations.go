package api

import (
	"fmt"
	"strconv"
)

// ListRegistrations returns one page of event registrations matching the filter.
func (c *Client) ListRegistrations(filter RegistrationFilter) (Page[Registration], error) {
	query := pageQuery(filter.Page, filter.Size)
	if filter.EventID > 0 {
		query.Set("event_id", strconv.Itoa(filter.EventID))
	}
	if filter.UserID > 0 {
		query.Set("user_id", strconv.Itoa(filter.UserID))
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}

	var page Page[Registration]
	if err := c.GetWithQuery("/registrations", query, &page); err != nil {
		return Page[Registration]{}, fmt.Errorf("failed to list registrations: %w", err)
	}
	return page, nil
}

// SetRegistrationStatus transitions a registration to the given status.
func (c *Client) SetRegistrationStatus(id int, status string) (*Registration, error) {
	body := struct {
		Status string `json:"status"`
	}{Status: status}

	var reg Registration
	if err := c.Put("/registrations/"+strconv.Itoa(id), body, &reg); err != nil {
		return nil, fmt.Errorf("failed to update registration %d: %w", id, err)
	}
	return &reg, nil
}

// ApproveRegistration approves a pending registration.
func (c *Client) ApproveRegistration(id int) (*Registration, error) {
	return c.SetRegistrationStatus(id, RegistrationApproved)
}

// RejectRegistration rejects a pending registration.
func (c *Client) RejectRegistration(id int) (*Registration, error) {
	return c.SetRegistrationStatus(id, RegistrationRejected)
}

// MarkAttended marks a registration as attended.
func (c *Client) MarkAttended(id int) (*Registration, error) {
	return c.SetRegistrationStatus(id, RegistrationAttended)
}

// DeleteRegistration deletes a registration.
func (c *Client) DeleteRegistration(id int) error {
	if err := c.Delete("/registrations/" + strconv.Itoa(id)); err != nil {
		return fmt.Errorf("failed to delete registration %d: %w", id, err)
	}
	return nil
}
