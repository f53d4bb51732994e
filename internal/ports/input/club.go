package input

import (
	"context"

	"github.com/google/uuid"

	"clubboard/internal/domain/entities"
	"clubboard/internal/ports/output"
)

type ClubUseCase interface {
	Create(ctx context.Context, club *entities.Club) error
	SaveDiscordTarget(ctx context.Context, id uuid.UUID, guildID, channelID string) error
	ListGuildChannels(ctx context.Context, guildID string) ([]output.Channel, error)
}
