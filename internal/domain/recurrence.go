package domain

import (
	"clubboard/internal/domain/entities"
)

// DefaultRepeatWeeks bounds the expansion window when a recurring event has
// no explicit repeat-until date.
const DefaultRepeatWeeks = 12

// ExpandWeekly returns the future weekly occurrences of a recurring event
// template: one copy per week after StartTime, up to and including
// RepeatUntil (or StartTime + 12 weeks when RepeatUntil is unset).
//
// The template itself (week 0) is not part of the result — the moderation
// flow approves the template row in place. Content fields are copied
// verbatim and every occurrence is born approved, with TemplateEventID set
// to the template's id. The result is empty when no candidate falls within
// the window; that is not an error.
//
// Pure: no clock, no randomness — the window derives entirely from the
// template's own fields.
func ExpandWeekly(original *entities.Event) []entities.Event {
	until := original.RepeatUntil
	if until.IsZero() {
		until = original.StartTime.AddDate(0, 0, DefaultRepeatWeeks*7)
	}

	templateID := original.ID
	var occurrences []entities.Event
	for k := 1; ; k++ {
		candidate := original.StartTime.AddDate(0, 0, 7*k)
		if candidate.After(until) {
			break
		}
		occurrences = append(occurrences, entities.Event{
			Title:           original.Title,
			ClubName:        original.ClubName,
			Description:     original.Description,
			Location:        original.Location,
			ContactEmail:    original.ContactEmail,
			ImageURL:        original.ImageURL,
			StartTime:       candidate,
			Status:          StatusApproved,
			RepeatWeekly:    original.RepeatWeekly,
			RepeatUntil:     original.RepeatUntil,
			TemplateEventID: &templateID,
		})
	}
	return occurrences
}
