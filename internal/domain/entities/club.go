package entities

import (
	"time"

	"github.com/google/uuid"
)

// Club is a student club that submits events. DiscordGuildID and
// DiscordChannelID are set once the club links a Discord server; both empty
// means the club never configured Discord posting.
type Club struct {
	ID               uuid.UUID
	Name             string
	Email            string // optional
	DiscordGuildID   string
	DiscordChannelID string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (c *Club) HasDiscordChannel() bool {
	return c.DiscordChannelID != ""
}
