package input

import (
	"context"

	"github.com/google/uuid"

	"clubboard/internal/domain/entities"
)

type ModerationUseCase interface {
	// ListPending returns pending events, most recently submitted first.
	ListPending(ctx context.Context) ([]entities.Event, error)
	// Decide approves or rejects a pending event. Approving a weekly
	// recurring event also materializes its future occurrences.
	Decide(ctx context.Context, id uuid.UUID, action string) error
}
