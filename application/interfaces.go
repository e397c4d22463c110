package application

import (
	"context"
	"time"

	"smanager/application/dto"
)

// Messenger defines the Discord operations handlers need.
// Implementations swallow the expected transport failures (unknown channel or message,
// missing permissions, missing state) and only return errors a handler should surface.
type Messenger interface {
	// ChannelExists reports whether the channel is still reachable
	ChannelExists(ctx context.Context, channelID int64) bool

	// CanSend reports whether the bot may post in the channel
	CanSend(ctx context.Context, channelID int64) bool

	// RoleExists reports whether the role is still present in the guild
	RoleExists(ctx context.Context, guildID, roleID int64) bool

	// InGuild reports whether the bot is a member of the guild
	InGuild(guildID int64) bool

	// UserTag returns the display tag of a user, empty when unknown
	UserTag(ctx context.Context, userID int64) string

	AddReaction(ctx context.Context, channelID, messageID int64, emoji string) error

	// Reply answers a message with an embed and returns the reply's ID, 0 when nothing was sent
	Reply(ctx context.Context, channelID, messageID int64, embed dto.Embed) (int64, error)

	Send(ctx context.Context, channelID int64, msg dto.OutgoingMessage) error
	DeleteMessage(ctx context.Context, channelID, messageID int64) error
	RemoveRole(ctx context.Context, guildID, userID, roleID int64) error
}

// Scheduler runs work outside the handler that requested it
type Scheduler interface {
	// Go runs fn in the background
	Go(name string, fn func(ctx context.Context) error)

	// After runs fn once delay has passed
	After(delay time.Duration, name string, fn func(ctx context.Context) error)
}

// ChannelCache is the in-memory set of channels the bot watches
type ChannelCache interface {
	// Evict drops a channel from every cached set
	Evict(channelID int64)
}
