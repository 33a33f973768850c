package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestListEvents(t *testing.T) {
	tests := []struct {
		name       string
		filter     EventFilter
		response   Page[Event]
		statusCode int
		wantErr    bool
	}{
		{
			name:   "successful request",
			filter: EventFilter{Page: 1, Size: 20},
			response: Page[Event]{
				Items: []Event{
					{ID: 1, Title: "Trail Run", EventType: "sports", PointsReward: 50},
					{ID: 2, Title: "Coding Night", EventType: "workshop", PointsReward: 30},
				},
				Total: 2,
				Page:  1,
				Size:  20,
				Pages: 1,
			},
			statusCode: http.StatusOK,
			wantErr:    false,
		},
		{
			name:       "unauthorized",
			filter:     EventFilter{},
			statusCode: http.StatusUnauthorized,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET request, got %s", r.Method)
				}

				if r.URL.Path != "/events" {
					t.Errorf("expected /events path, got %s", r.URL.Path)
				}

				if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
					t.Errorf("expected bearer auth header, got %q", got)
				}

				if r.Header.Get("X-Request-Id") == "" {
					t.Error("expected X-Request-Id header to be set")
				}

				w.WriteHeader(tt.statusCode)
				if tt.statusCode == http.StatusOK {
					json.NewEncoder(w).Encode(tt.response)
				}
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-token")

			page, err := client.ListEvents(tt.filter)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if len(page.Items) != len(tt.response.Items) {
				t.Errorf("expected %d events, got %d", len(tt.response.Items), len(page.Items))
			}

			if len(page.Items) > 0 && page.Items[0].Title != tt.response.Items[0].Title {
				t.Errorf("expected title %q, got %q", tt.response.Items[0].Title, page.Items[0].Title)
			}
		})
	}
}

func TestListEventsFilterQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("search") != "run" {
			t.Errorf("expected search=run, got %q", q.Get("search"))
		}
		if q.Get("event_type") != "sports" {
			t.Errorf("expected event_type=sports, got %q", q.Get("event_type"))
		}
		if q.Get("is_active") != "true" {
			t.Errorf("expected is_active=true, got %q", q.Get("is_active"))
		}
		if q.Get("page") != "2" || q.Get("size") != "10" {
			t.Errorf("expected page=2 size=10, got page=%q size=%q", q.Get("page"), q.Get("size"))
		}

		json.NewEncoder(w).Encode(Page[Event]{Page: 2, Size: 10, Pages: 2})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")

	_, err := client.ListEvents(EventFilter{
		Search:     "run",
		EventType:  "sports",
		ActiveOnly: true,
		Page:       2,
		Size:       10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateEvent(t *testing.T) {
	start := time.Date(2026, 9, 12, 8, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	tests := []struct {
		name       string
		request    CreateEventRequest
		response   Event
		statusCode int
		wantErr    bool
	}{
		{
			name: "successful creation",
			request: CreateEventRequest{
				Title:        "Beach Cleanup",
				EventType:    "community",
				StartTime:    start,
				EndTime:      end,
				PointsReward: 100,
			},
			response: Event{
				ID:           7,
				Title:        "Beach Cleanup",
				EventType:    "community",
				PointsReward: 100,
			},
			statusCode: http.StatusOK,
			wantErr:    false,
		},
		{
			name: "validation error",
			request: CreateEventRequest{
				Title: "", // Empty title
			},
			statusCode: http.StatusBadRequest,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST request, got %s", r.Method)
				}

				w.WriteHeader(tt.statusCode)
				if tt.statusCode == http.StatusOK {
					json.NewEncoder(w).Encode(tt.response)
				}
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-token")

			event, err := client.CreateEvent(tt.request)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if event.Title != tt.response.Title {
				t.Errorf("expected title %q, got %q", tt.response.Title, event.Title)
			}
		})
	}
}

func TestUpdateEvent(t *testing.T) {
	eventID := 42
	newTitle := "Updated Title"
	open := false

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT request, got %s", r.Method)
		}

		expectedPath := "/events/42"
		if r.URL.Path != expectedPath {
			t.Errorf("expected path %q, got %q", expectedPath, r.URL.Path)
		}

		var req UpdateEventRequest
		json.NewDecoder(r.Body).Decode(&req)

		if req.StartTime != nil {
			t.Error("expected omitted start_time to stay nil")
		}

		response := Event{
			ID:               eventID,
			Title:            *req.Title,
			RegistrationOpen: *req.RegistrationOpen,
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")

	event, err := client.UpdateEvent(eventID, UpdateEventRequest{
		Title:            &newTitle,
		RegistrationOpen: &open,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if event.Title != newTitle {
		t.Errorf("expected title %q, got %q", newTitle, event.Title)
	}

	if event.RegistrationOpen {
		t.Error("expected registration to be closed")
	}
}

func TestDeleteEvent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE request, got %s", r.Method)
		}

		if r.URL.Path != "/events/9" {
			t.Errorf("expected path /events/9, got %q", r.URL.Path)
		}

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")

	if err := client.DeleteEvent(9); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetEventNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")

	_, err := client.GetEvent(404)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if !apiErr.IsNotFound() {
		t.Errorf("expected IsNotFound, got status %d", apiErr.StatusCode)
	}
}
