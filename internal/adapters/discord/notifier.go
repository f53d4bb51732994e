package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"clubboard/internal/domain"
	"clubboard/internal/domain/entities"
	"clubboard/internal/ports/output"
	"clubboard/pkg/discordfmt"
)

var _ output.Notifier = (*Notifier)(nil)

// Notifier posts an approved event's summary to the owning club's
// configured channel. Clubs without a configured channel (or unknown to the
// directory) are a no-op success: most clubs never link Discord.
type Notifier struct {
	session  *discordgo.Session
	clubRepo output.ClubRepository
}

func NewNotifier(client *Client, clubRepo output.ClubRepository) *Notifier {
	return &Notifier{
		session:  client.session,
		clubRepo: clubRepo,
	}
}

func (n *Notifier) Notify(ctx context.Context, event *entities.Event) (string, error) {
	club, err := n.clubRepo.FindByName(ctx, event.ClubName)
	if errors.Is(err, domain.ErrClubNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("resolve club %q: %w", event.ClubName, err)
	}
	if !club.HasDiscordChannel() {
		return "", nil
	}

	content := discordfmt.BuildEventMessage(event)
	msg, err := n.session.ChannelMessageSend(club.DiscordChannelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("post to channel %s: %w", club.DiscordChannelID, err)
	}
	return msg.ID, nil
}

var (
	_ output.Notifier         = Disabled{}
	_ output.ChannelDirectory = Disabled{}
)

// Disabled stands in for the Discord integration when no bot token is
// configured: notifications become silent no-ops and channel listing fails.
type Disabled struct{}

func (Disabled) Notify(context.Context, *entities.Event) (string, error) {
	return "", nil
}

func (Disabled) ListTextChannels(context.Context, string) ([]output.Channel, error) {
	return nil, errors.New("discord integration disabled: no bot token configured")
}
