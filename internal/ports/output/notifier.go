package output

import (
	"context"

	"clubboard/internal/domain/entities"
)

// Notifier forwards an approved event to the owning club's configured
// external channel. A club without a configured channel is a no-op success
// (empty message id, nil error). The caller decides whether a failure is
// fatal; the moderation engine logs and discards it.
type Notifier interface {
	Notify(ctx context.Context, event *entities.Event) (messageID string, err error)
}
