package api

import (
	"fmt"
	"strconv"
)

// ListBadgeTypes returns one page of badge types.
func (c *Client) ListBadgeTypes(page, size int) (Page[BadgeType], error) {
	var result Page[BadgeType]
	if err := c.GetWithQuery("/badges/types", pageQuery(page, size), &result); err != nil {
		return Page[BadgeType]{}, fmt.Errorf("failed to list badge types: %w", err)
	}
	return result, nil
}

// GetBadgeType returns a single badge type by ID.
func (c *Client) GetBadgeType(id int) (*BadgeType, error) {
	var badge BadgeType
	if err := c.Get("/badges/types/"+strconv.Itoa(id), &badge); err != nil {
		return nil, fmt.Errorf("failed to get badge type %d: %w", id, err)
	}
	return &badge, nil
}

// CreateBadgeType creates a new badge type.
func (c *Client) CreateBadgeType(req CreateBadgeTypeRequest) (*BadgeType, error) {
	var badge BadgeType
	if err := c.Post("/badges/types", req, &badge); err != nil {
		return nil, fmt.Errorf("failed to create badge type: %w", err)
	}
	return &badge, nil
}

// UpdateBadgeType updates an existing badge type.
func (c *Client) UpdateBadgeType(id int, req UpdateBadgeTypeRequest) (*BadgeType, error) {
	var badge BadgeType
	if err := c.Put("/badges/types/"+strconv.Itoa(id), req, &badge); err != nil {
		return nil, fmt.Errorf("failed to update badge type %d: %w", id, err)
	}
	return &badge, nil
}

// DeleteBadgeType deletes a badge type.
func (c *Client) DeleteBadgeType(id int) error {
	if err := c.Delete("/badges/types/" + strconv.Itoa(id)); err != nil {
		return fmt.Errorf("failed to delete badge type %d: %w", id, err)
	}
	return nil
}
