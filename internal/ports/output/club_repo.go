package output

import (
	"context"

	"github.com/google/uuid"

	"clubboard/internal/domain/entities"
)

type ClubRepository interface {
	Create(ctx context.Context, club *entities.Club) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Club, error)
	FindByName(ctx context.Context, name string) (*entities.Club, error)
	SaveDiscordTarget(ctx context.Context, id uuid.UUID, guildID, channelID string) error
}
