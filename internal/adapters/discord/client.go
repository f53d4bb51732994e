package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"clubboard/internal/ports/output"
)

// Channel types the board can post to.
const (
	channelTypeText = int(discordgo.ChannelTypeGuildText)
	channelTypeNews = int(discordgo.ChannelTypeGuildNews)
)

var _ output.ChannelDirectory = (*Client)(nil)

// Client is an outbound-only Discord REST client authenticated with the
// board's bot credential. No gateway session is opened: the service only
// posts messages and enumerates channels.
type Client struct {
	session *discordgo.Session
}

func NewClient(botToken string) (*Client, error) {
	s, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("création de la session Discord: %w", err)
	}
	return &Client{session: s}, nil
}

// ListTextChannels returns the guild's text and announcement channels,
// the only kinds a club can pick as its posting target.
func (c *Client) ListTextChannels(ctx context.Context, guildID string) ([]output.Channel, error) {
	channels, err := c.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("list guild channels: %w", err)
	}

	out := make([]output.Channel, 0, len(channels))
	for _, ch := range channels {
		t := int(ch.Type)
		if t != channelTypeText && t != channelTypeNews {
			continue
		}
		out = append(out, output.Channel{ID: ch.ID, Name: ch.Name, Type: t})
	}
	return out, nil
}
