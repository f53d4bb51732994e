package http

import (
	"github.com/go-playground/validator/v10"

	"clubboard/internal/ports/input"
	"clubboard/internal/ports/output"
)

// Handler serves the board's HTTP API using use cases.
type Handler struct {
	moderation input.ModerationUseCase
	events     input.EventUseCase
	clubs      input.ClubUseCase
	waitlist   input.WaitlistUseCase
	translator output.T
	validate   *validator.Validate
}

// NewHandler creates a Handler.
func NewHandler(
	moderation input.ModerationUseCase,
	events input.EventUseCase,
	clubs input.ClubUseCase,
	waitlist input.WaitlistUseCase,
	translator output.T,
) *Handler {
	return &Handler{
		moderation: moderation,
		events:     events,
		clubs:      clubs,
		waitlist:   waitlist,
		translator: translator,
		validate:   validator.New(),
	}
}
