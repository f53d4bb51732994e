package application

import (
	"context"

	"github.com/google/uuid"

	"clubboard/internal/domain/entities"
	"clubboard/internal/ports/output"
)

type ClubService struct {
	clubRepo output.ClubRepository
	channels output.ChannelDirectory
}

func NewClubService(clubRepo output.ClubRepository, channels output.ChannelDirectory) *ClubService {
	return &ClubService{
		clubRepo: clubRepo,
		channels: channels,
	}
}

func (s *ClubService) Create(ctx context.Context, club *entities.Club) error {
	return s.clubRepo.Create(ctx, club)
}

// SaveDiscordTarget records the guild/channel an approved event gets posted
// to. The club must exist before the update.
func (s *ClubService) SaveDiscordTarget(ctx context.Context, id uuid.UUID, guildID, channelID string) error {
	if _, err := s.clubRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.clubRepo.SaveDiscordTarget(ctx, id, guildID, channelID)
}

func (s *ClubService) ListGuildChannels(ctx context.Context, guildID string) ([]output.Channel, error) {
	return s.channels.ListTextChannels(ctx, guildID)
}
