package application

import (
	"context"
	"time"

	"clubboard/internal/domain"
	"clubboard/internal/domain/entities"
	"clubboard/internal/ports/output"
	"clubboard/pkg/tz"
)

const defaultPastLimit = 10

type EventService struct {
	eventRepo output.EventRepository
}

func NewEventService(eventRepo output.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// Submit stores a club submission as a pending event.
func (s *EventService) Submit(ctx context.Context, event *entities.Event) error {
	event.Status = domain.StatusPending
	return s.eventRepo.Create(ctx, event)
}

// Upcoming lists approved events starting now or later, soonest first.
func (s *EventService) Upcoming(ctx context.Context, clubName string) ([]entities.Event, error) {
	return s.eventRepo.FindApproved(ctx, output.ApprovedWindow{
		From:     time.Now(),
		ClubName: clubName,
	})
}

// Past lists approved events that already started, most recent first.
func (s *EventService) Past(ctx context.Context, clubName string, limit int) ([]entities.Event, error) {
	if limit <= 0 {
		limit = defaultPastLimit
	}
	return s.eventRepo.FindApproved(ctx, output.ApprovedWindow{
		To:       time.Now(),
		ClubName: clubName,
		Newest:   true,
		Limit:    limit,
	})
}

// Today lists approved events within the current campus day.
func (s *EventService) Today(ctx context.Context, clubName string) ([]entities.Event, error) {
	now := time.Now().In(tz.Campus)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, tz.Campus)
	return s.eventRepo.FindApproved(ctx, output.ApprovedWindow{
		From:     startOfDay,
		To:       startOfDay.AddDate(0, 0, 1),
		ClubName: clubName,
	})
}
