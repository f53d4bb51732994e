package discordfmt

import (
	"strings"
	"testing"
	"time"

	"clubboard/internal/domain/entities"
	"clubboard/pkg/tz"
)

func TestBuildEventMessageAllFields(t *testing.T) {
	tz.Campus = time.UTC

	event := &entities.Event{
		Title:       "Jazz Jam",
		Description: "Bring your instrument",
		Location:    "Music Hall B",
		StartTime:   time.Date(2025, time.June, 2, 18, 30, 0, 0, time.UTC),
	}

	got := BuildEventMessage(event)
	want := "**Jazz Jam**\nBring your instrument\n📍 Music Hall B\n📅 Mon, Jun 2 2025 at 6:30 PM"
	if got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestBuildEventMessageOmitsEmptyLines(t *testing.T) {
	tz.Campus = time.UTC

	tests := []struct {
		name   string
		event  entities.Event
		want   []string
		absent []string
	}{
		{
			name:   "title only",
			event:  entities.Event{Title: "Solo"},
			want:   []string{"**Solo**"},
			absent: []string{"📍", "📅", "\n"},
		},
		{
			name: "no location",
			event: entities.Event{
				Title:       "Talk",
				Description: "Guest speaker",
				StartTime:   time.Date(2025, time.June, 3, 12, 0, 0, 0, time.UTC),
			},
			want:   []string{"**Talk**", "Guest speaker", "📅"},
			absent: []string{"📍"},
		},
		{
			name: "no description",
			event: entities.Event{
				Title:    "Meetup",
				Location: "Cafe",
			},
			want:   []string{"**Meetup**", "📍 Cafe"},
			absent: []string{"📅"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildEventMessage(&tt.event)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("message %q missing %q", got, w)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(got, a) {
					t.Errorf("message %q should not contain %q", got, a)
				}
			}
		})
	}
}

func TestBuildEventMessageFallbackTitle(t *testing.T) {
	got := BuildEventMessage(&entities.Event{})
	if !strings.HasPrefix(got, "**New Event**") {
		t.Errorf("message = %q, want fallback title", got)
	}
}
