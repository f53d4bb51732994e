package output

import (
	"context"

	"clubboard/internal/domain/entities"
)

type WaitlistRepository interface {
	Create(ctx context.Context, signup *entities.WaitlistSignup) error
}
