package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"clubboard/internal/domain/entities"
)

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandWeeklyInclusiveBound(t *testing.T) {
	original := &entities.Event{
		ID:           uuid.New(),
		Title:        "Chess Night",
		ClubName:     "Chess Club",
		Description:  "Casual games, all levels",
		Location:     "Room 204",
		ContactEmail: "chess@campus.edu",
		ImageURL:     "https://cdn.campus.edu/chess.png",
		StartTime:    utc(2025, time.January, 1),
		Status:       StatusPending,
		RepeatWeekly: true,
		RepeatUntil:  utc(2025, time.January, 22),
	}

	occurrences := ExpandWeekly(original)
	if len(occurrences) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(occurrences))
	}

	want := []time.Time{
		utc(2025, time.January, 8),
		utc(2025, time.January, 15),
		utc(2025, time.January, 22), // boundary is inclusive
	}
	for i, occ := range occurrences {
		if !occ.StartTime.Equal(want[i]) {
			t.Errorf("occurrence %d: start = %s, want %s", i, occ.StartTime, want[i])
		}
		if occ.Status != StatusApproved {
			t.Errorf("occurrence %d: status = %q, want approved", i, occ.Status)
		}
		if occ.Title != original.Title ||
			occ.ClubName != original.ClubName ||
			occ.Description != original.Description ||
			occ.Location != original.Location ||
			occ.ContactEmail != original.ContactEmail ||
			occ.ImageURL != original.ImageURL {
			t.Errorf("occurrence %d: content fields differ from original", i)
		}
		if occ.TemplateEventID == nil || *occ.TemplateEventID != original.ID {
			t.Errorf("occurrence %d: missing template back-reference", i)
		}
	}
}

func TestExpandWeeklyDefaultWindow(t *testing.T) {
	original := &entities.Event{
		ID:           uuid.New(),
		Title:        "Weekly Run",
		ClubName:     "Running Club",
		StartTime:    utc(2025, time.January, 1),
		RepeatWeekly: true,
	}

	occurrences := ExpandWeekly(original)
	if len(occurrences) != DefaultRepeatWeeks {
		t.Fatalf("expected %d occurrences, got %d", DefaultRepeatWeeks, len(occurrences))
	}

	last := occurrences[len(occurrences)-1].StartTime
	if want := utc(2025, time.March, 26); !last.Equal(want) {
		t.Errorf("last occurrence = %s, want %s", last, want)
	}
}

func TestExpandWeeklyEmptyWindow(t *testing.T) {
	original := &entities.Event{
		ID:           uuid.New(),
		Title:        "One-off-ish",
		ClubName:     "Improv",
		StartTime:    utc(2025, time.May, 1),
		RepeatWeekly: true,
		RepeatUntil:  utc(2025, time.May, 6), // less than a week out
	}

	if occurrences := ExpandWeekly(original); len(occurrences) != 0 {
		t.Fatalf("expected no occurrences, got %d", len(occurrences))
	}
}

func TestExpandWeeklyDeterministic(t *testing.T) {
	original := &entities.Event{
		ID:           uuid.New(),
		Title:        "Book Circle",
		ClubName:     "Lit Society",
		StartTime:    utc(2025, time.February, 3),
		RepeatWeekly: true,
		RepeatUntil:  utc(2025, time.March, 3),
	}

	first := ExpandWeekly(original)
	second := ExpandWeekly(original)
	if len(first) != len(second) {
		t.Fatalf("expansion not deterministic: %d vs %d occurrences", len(first), len(second))
	}
	for i := range first {
		if !first[i].StartTime.Equal(second[i].StartTime) {
			t.Errorf("occurrence %d differs between runs", i)
		}
	}
}
