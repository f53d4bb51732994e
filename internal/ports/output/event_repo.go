package output

import (
	"context"
	"time"

	"github.com/google/uuid"

	"clubboard/internal/domain/entities"
)

// ApprovedWindow filters the public feed of approved events.
type ApprovedWindow struct {
	From     time.Time // zero = open lower bound
	To       time.Time // zero = open upper bound
	ClubName string    // empty = all clubs
	Newest   bool      // order by start_time descending when true
	Limit    int       // 0 = no limit
}

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	FindPending(ctx context.Context) ([]entities.Event, error)
	FindApproved(ctx context.Context, window ApprovedWindow) ([]entities.Event, error)
	// UpdateStatusIfPending transitions status only when the row is still
	// pending; returns domain.ErrEventNotPending when another decision won.
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status string) error
	// ApproveWithOccurrences approves the template and bulk-inserts its
	// materialized occurrences in a single transaction.
	ApproveWithOccurrences(ctx context.Context, id uuid.UUID, occurrences []entities.Event) error
}
