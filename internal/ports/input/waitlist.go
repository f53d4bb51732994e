package input

import (
	"context"

	"clubboard/internal/domain/entities"
)

type WaitlistUseCase interface {
	Signup(ctx context.Context, signup *entities.WaitlistSignup) error
}
