package application

import (
	"context"
	"strings"

	"clubboard/internal/domain/entities"
	"clubboard/internal/ports/output"
)

type WaitlistService struct {
	waitlistRepo output.WaitlistRepository
}

func NewWaitlistService(waitlistRepo output.WaitlistRepository) *WaitlistService {
	return &WaitlistService{waitlistRepo: waitlistRepo}
}

func (s *WaitlistService) Signup(ctx context.Context, signup *entities.WaitlistSignup) error {
	signup.Email = strings.ToLower(strings.TrimSpace(signup.Email))
	signup.Name = strings.TrimSpace(signup.Name)
	return s.waitlistRepo.Create(ctx, signup)
}
