package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListRegistrations(t *testing.T) {
	tests := []struct {
		name      string
		filter    RegistrationFilter
		wantQuery map[string]string
	}{
		{
			name:      "by event",
			filter:    RegistrationFilter{EventID: 7},
			wantQuery: map[string]string{"event_id": "7"},
		},
		{
			name:      "by user and status",
			filter:    RegistrationFilter{UserID: 3, Status: RegistrationPending},
			wantQuery: map[string]string{"user_id": "3", "status": "pending"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/registrations" {
					t.Errorf("expected /registrations path, got %s", r.URL.Path)
				}

				q := r.URL.Query()
				for key, want := range tt.wantQuery {
					if got := q.Get(key); got != want {
						t.Errorf("expected %s=%q, got %q", key, want, got)
					}
				}

				json.NewEncoder(w).Encode(Page[Registration]{
					Items: []Registration{
						{ID: 1, EventID: 7, UserID: 3, Status: RegistrationPending, EventTitle: "Trail Run"},
					},
					Total: 1,
					Page:  1,
					Pages: 1,
				})
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-token")

			page, err := client.ListRegistrations(tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(page.Items) != 1 {
				t.Fatalf("expected 1 registration, got %d", len(page.Items))
			}

			if page.Items[0].EventTitle != "Trail Run" {
				t.Errorf("expected event title %q, got %q", "Trail Run", page.Items[0].EventTitle)
			}
		})
	}
}

func TestRegistrationStatusTransitions(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c *Client) (*Registration, error)
		wantStatus string
	}{
		{
			name:       "approve",
			call:       func(c *Client) (*Registration, error) { return c.ApproveRegistration(11) },
			wantStatus: RegistrationApproved,
		},
		{
			name:       "reject",
			call:       func(c *Client) (*Registration, error) { return c.RejectRegistration(11) },
			wantStatus: RegistrationRejected,
		},
		{
			name:       "mark attended",
			call:       func(c *Client) (*Registration, error) { return c.MarkAttended(11) },
			wantStatus: RegistrationAttended,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPut {
					t.Errorf("expected PUT request, got %s", r.Method)
				}

				if r.URL.Path != "/registrations/11" {
					t.Errorf("expected path /registrations/11, got %q", r.URL.Path)
				}

				var req struct {
					Status string `json:"status"`
				}
				json.NewDecoder(r.Body).Decode(&req)

				if req.Status != tt.wantStatus {
					t.Errorf("expected status %q, got %q", tt.wantStatus, req.Status)
				}

				json.NewEncoder(w).Encode(Registration{ID: 11, Status: req.Status})
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-token")

			reg, err := tt.call(client)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if reg.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, reg.Status)
			}
		})
	}
}

func TestDeleteRegistration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE request, got %s", r.Method)
		}

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")

	if err := client.DeleteRegistration(11); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPageHasMore(t *testing.T) {
	tests := []struct {
		name string
		page Page[Registration]
		want bool
	}{
		{name: "more pages remain", page: Page[Registration]{Page: 1, Pages: 3}, want: true},
		{name: "last page", page: Page[Registration]{Page: 3, Pages: 3}, want: false},
		{name: "empty result", page: Page[Registration]{Page: 1, Pages: 0}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.page.HasMore(); got != tt.want {
				t.Errorf("expected HasMore=%v, got %v", tt.want, got)
			}
		})
	}
}
