package entities

import (
	"time"

	"github.com/google/uuid"
)

// Event is one scheduled occurrence submitted by a club. A row with
// RepeatWeekly set acts as the template for weekly occurrences that get
// materialized when the template is approved.
type Event struct {
	ID           uuid.UUID
	Title        string
	ClubName     string
	Description  string // optional
	Location     string // optional
	ContactEmail string // optional
	ImageURL     string // optional
	StartTime    time.Time
	Status       string
	RepeatWeekly bool
	RepeatUntil  time.Time // zero = not set; date granularity
	// TemplateEventID links a materialized occurrence back to the template
	// it was expanded from. Nil for submitted events.
	TemplateEventID *uuid.UUID
	CreatedAt       time.Time
}

func (e *Event) HasRepeatUntil() bool {
	return !e.RepeatUntil.IsZero()
}
