package output

import "context"

// Channel is a postable channel in an external guild/server.
type Channel struct {
	ID   string
	Name string
	Type int
}

// ChannelDirectory lists the channels of an external guild the bot can see.
type ChannelDirectory interface {
	ListTextChannels(ctx context.Context, guildID string) ([]Channel, error)
}
