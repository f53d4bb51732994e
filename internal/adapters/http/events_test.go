package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"clubboard/internal/domain"
	"clubboard/internal/domain/entities"
)

type fakeEvents struct {
	submitted []entities.Event
	feed      []entities.Event
	lastClub  string
}

func (f *fakeEvents) Submit(_ context.Context, event *entities.Event) error {
	event.Status = domain.StatusPending
	f.submitted = append(f.submitted, *event)
	return nil
}

func (f *fakeEvents) Upcoming(_ context.Context, clubName string) ([]entities.Event, error) {
	f.lastClub = clubName
	return f.feed, nil
}

func (f *fakeEvents) Past(_ context.Context, clubName string, _ int) ([]entities.Event, error) {
	f.lastClub = clubName
	return f.feed, nil
}

func (f *fakeEvents) Today(_ context.Context, clubName string) ([]entities.Event, error) {
	f.lastClub = clubName
	return f.feed, nil
}

func TestSubmitEvent(t *testing.T) {
	events := &fakeEvents{}
	app := NewServer(NewHandler(nil, events, nil, nil, stubT{}))

	body := `{
		"title": "Chess Night",
		"club_name": "Chess Club",
		"start_time": "2025-06-02T18:00:00Z",
		"repeat_weekly": true,
		"repeat_until": "2025-08-25"
	}`
	req := httptest.NewRequest("POST", "/api/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var created map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created["status"] != domain.StatusPending {
		t.Errorf("created status = %v, want pending", created["status"])
	}
	if created["repeat_until"] != "2025-08-25" {
		t.Errorf("repeat_until = %v, want 2025-08-25", created["repeat_until"])
	}
	if len(events.submitted) != 1 || !events.submitted[0].RepeatWeekly {
		t.Errorf("submission not forwarded: %+v", events.submitted)
	}
}

func TestSubmitEventValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"club_name":"Chess Club","start_time":"2025-06-02T18:00:00Z"}`},
		{"missing club", `{"title":"Chess Night","start_time":"2025-06-02T18:00:00Z"}`},
		{"missing start", `{"title":"Chess Night","club_name":"Chess Club"}`},
		{"bad email", `{"title":"T","club_name":"C","start_time":"2025-06-02T18:00:00Z","contact_email":"nope"}`},
		{"bad repeat_until", `{"title":"T","club_name":"C","start_time":"2025-06-02T18:00:00Z","repeat_until":"next week"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewServer(NewHandler(nil, &fakeEvents{}, nil, nil, stubT{}))
			req := httptest.NewRequest("POST", "/api/events", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			if resp.StatusCode != 400 {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestListEventsForwardsClubFilter(t *testing.T) {
	for _, window := range []string{"upcoming", "past", "today"} {
		t.Run(window, func(t *testing.T) {
			events := &fakeEvents{}
			app := NewServer(NewHandler(nil, events, nil, nil, stubT{}))

			url := "/api/events?window=" + window + "&club=Chess%20Club"
			resp, err := app.Test(httptest.NewRequest("GET", url, nil))
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			if resp.StatusCode != 200 {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			if events.lastClub != "Chess Club" {
				t.Errorf("club filter = %q, want Chess Club", events.lastClub)
			}
		})
	}
}

func TestListEventsUnknownWindow(t *testing.T) {
	app := NewServer(NewHandler(nil, &fakeEvents{}, nil, nil, stubT{}))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/events?window=someday", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
