package application

import (
	"context"
	"log"

	"github.com/google/uuid"

	"clubboard/internal/domain"
	"clubboard/internal/domain/entities"
	"clubboard/internal/ports/output"
)

// ModerationService decides pending events and materializes weekly
// occurrences on approval.
type ModerationService struct {
	eventRepo output.EventRepository
	notifier  output.Notifier
}

func NewModerationService(eventRepo output.EventRepository, notifier output.Notifier) *ModerationService {
	return &ModerationService{
		eventRepo: eventRepo,
		notifier:  notifier,
	}
}

func (s *ModerationService) ListPending(ctx context.Context) ([]entities.Event, error) {
	return s.eventRepo.FindPending(ctx)
}

// Decide transitions a pending event to approved or rejected. Approving a
// weekly recurring event also bulk-inserts its future occurrences; the
// status update and the insert commit as one transaction. The Discord
// notification runs after the commit and is best-effort: its result is
// logged and deliberately discarded.
func (s *ModerationService) Decide(ctx context.Context, id uuid.UUID, action string) error {
	newStatus, err := domain.StatusForAction(action)
	if err != nil {
		return err
	}

	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if newStatus == domain.StatusApproved && event.RepeatWeekly {
		occurrences := domain.ExpandWeekly(event)
		if err := s.eventRepo.ApproveWithOccurrences(ctx, id, occurrences); err != nil {
			return err
		}
	} else {
		if err := s.eventRepo.UpdateStatusIfPending(ctx, id, newStatus); err != nil {
			return err
		}
	}

	if newStatus == domain.StatusApproved {
		s.notifyBestEffort(ctx, event)
	}
	return nil
}

func (s *ModerationService) notifyBestEffort(ctx context.Context, event *entities.Event) {
	messageID, err := s.notifier.Notify(ctx, event)
	if err != nil {
		log.Printf("⚠️ Notification Discord abandonnée (event=%s): %v", event.ID, err)
		return
	}
	if messageID != "" {
		log.Printf("📣 Événement relayé sur Discord (event=%s, message=%s)", event.ID, messageID)
	}
}
