package api

import (
	"fmt"
	"strconv"
)

// ListUsers returns one page of users matching the filter.
func (c *Client) ListUsers(filter UserFilter) (Page[User], error) {
	query := pageQuery(filter.Page, filter.Size)
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.ActiveOnly {
		query.Set("is_active", "true")
	}

	var page Page[User]
	if err := c.GetWithQuery("/users", query, &page); err != nil {
		return Page[User]{}, fmt.Errorf("failed to list users: %w", err)
	}
	return page, nil
}

// GetUser returns a single user by ID.
func (c *Client) GetUser(id int) (*User, error) {
	var user User
	if err := c.Get("/users/"+strconv.Itoa(id), &user); err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

// SetUserActive activates or deactivates a user account.
func (c *Client) SetUserActive(id int, active bool) (*User, error) {
	body := struct {
		IsActive bool `json:"is_active"`
	}{IsActive: active}

	var user User
	if err := c.Put("/users/"+strconv.Itoa(id), body, &user); err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return &user, nil
}

// DeleteUser deletes a user account.
func (c *Client) DeleteUser(id int) error {
	if err := c.Delete("/users/" + strconv.Itoa(id)); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
