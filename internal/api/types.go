// Package api provides a client for the Pine Time admin REST API.
package api

import (
	"fmt"
	"time"
)

// Event represents a Pine Time event.
type Event struct {
	ID                int       `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	EventType         string    `json:"event_type"`
	Location          string    `json:"location"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	MaxParticipants   int       `json:"max_participants"`
	PointsReward      int       `json:"points_reward"`
	RegistrationOpen  bool      `json:"registration_open"`
	IsActive          bool      `json:"is_active"`
	RegistrationCount int       `json:"registration_count"`
	ImageURL          string    `json:"image_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// User represents a platform user account.
type User struct {
	ID          int       `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	Points      int       `json:"points"`
	CreatedAt   time.Time `json:"created_at"`
}

// BadgeType represents an earnable badge definition.
type BadgeType struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Level          string `json:"level"`
	CriteriaPoints int    `json:"criteria_points"`
	ImageURL       string `json:"image_url,omitempty"`
}

// Registration statuses returned by the registrations endpoints.
const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
	RegistrationAttended = "attended"
)

// Registration represents a user's registration for an event.
type Registration struct {
	ID               int       `json:"id"`
	EventID          int       `json:"event_id"`
	UserID           int       `json:"user_id"`
	Status           string    `json:"status"`
	RegistrationDate time.Time `json:"registration_date"`

	// Denormalized for display; the admin API includes these on list responses.
	EventTitle string `json:"event_title,omitempty"`
	UserName   string `json:"user_name,omitempty"`
}

// Page is a page-numbered API response.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

// HasMore reports whether pages beyond this one remain.
func (p Page[T]) HasMore() bool {
	return p.Page < p.Pages
}

// CreateEventRequest represents the request body for creating an event.
type CreateEventRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	EventType       string    `json:"event_type,omitempty"`
	Location        string    `json:"location,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	MaxParticipants int       `json:"max_participants,omitempty"`
	PointsReward    int       `json:"points_reward,omitempty"`
}

// UpdateEventRequest represents the request body for updating an event.
// Nil fields are omitted and left unchanged by the server.
type UpdateEventRequest struct {
	Title            *string    `json:"title,omitempty"`
	Description      *string    `json:"description,omitempty"`
	EventType        *string    `json:"event_type,omitempty"`
	Location         *string    `json:"location,omitempty"`
	StartTime        *time.Time `json:"start_time,omitempty"`
	EndTime          *time.Time `json:"end_time,omitempty"`
	MaxParticipants  *int       `json:"max_participants,omitempty"`
	PointsReward     *int       `json:"points_reward,omitempty"`
	RegistrationOpen *bool      `json:"registration_open,omitempty"`
	IsActive         *bool      `json:"is_active,omitempty"`
}

// CreateBadgeTypeRequest represents the request body for creating a badge type.
type CreateBadgeTypeRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Level          string `json:"level,omitempty"`
	CriteriaPoints int    `json:"criteria_points,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
}

// UpdateBadgeTypeRequest represents the request body for updating a badge type.
type UpdateBadgeTypeRequest struct {
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	Level          *string `json:"level,omitempty"`
	CriteriaPoints *int    `json:"criteria_points,omitempty"`
	ImageURL       *string `json:"image_url,omitempty"`
}

// EventFilter contains optional filters for listing events.
type EventFilter struct {
	Search     string
	EventType  string
	ActiveOnly bool
	Page       int
	Size       int
}

// UserFilter contains optional filters for listing users.
type UserFilter struct {
	Search     string
	ActiveOnly bool
	Page       int
	Size       int
}

// RegistrationFilter contains optional filters for listing registrations.
type RegistrationFilter struct {
	EventID int
	UserID  int
	Status  string
	Page    int
	Size    int
}

// IsUpcoming returns true if the event starts in the future.
func (e *Event) IsUpcoming() bool {
	return e.StartTime.After(time.Now())
}

// IsOngoing returns true if the event is currently running.
func (e *Event) IsOngoing() bool {
	now := time.Now()
	return !e.StartTime.After(now) && e.EndTime.After(now)
}

// IsFull returns true if the event has reached its participant cap.
func (e *Event) IsFull() bool {
	return e.MaxParticipants > 0 && e.RegistrationCount >= e.MaxParticipants
}

// WhenDisplay returns a human-readable start time string.
func (e *Event) WhenDisplay() string {
	now := time.Now()
	start := e.StartTime.Local()

	today := now.Truncate(24 * time.Hour)
	day := start.Truncate(24 * time.Hour)
	diff := int(day.Sub(today).Hours() / 24)

	switch {
	case diff < -1:
		return fmt.Sprintf("%d days ago", -diff)
	case diff == -1:
		return "yesterday"
	case diff == 0:
		return start.Format("today 15:04")
	case diff == 1:
		return start.Format("tomorrow 15:04")
	case diff < 7:
		return start.Format("Monday 15:04")
	default:
		return start.Format("Jan 2 15:04")
	}
}

// DisplayName returns the best available name for a user.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}
