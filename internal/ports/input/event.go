package input

import (
	"context"

	"clubboard/internal/domain/entities"
)

type EventUseCase interface {
	Submit(ctx context.Context, event *entities.Event) error
	Upcoming(ctx context.Context, clubName string) ([]entities.Event, error)
	Past(ctx context.Context, clubName string, limit int) ([]entities.Event, error)
	Today(ctx context.Context, clubName string) ([]entities.Event, error)
}
