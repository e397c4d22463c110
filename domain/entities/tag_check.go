package entities

// TagCheck validates teammate mentions in a channel
type TagCheck struct {
	ID               int64 `db:"id"`
	GuildID          int64 `db:"guild_id"`
	ChannelID        int64 `db:"channel_id"`
	RequiredMentions int   `db:"required_mentions"`
}

// EasyTag rewrites plain teammate names into mentions in a channel
type EasyTag struct {
	ID          int64 `db:"id"`
	GuildID     int64 `db:"guild_id"`
	ChannelID   int64 `db:"channel_id"`
	DeleteAfter bool  `db:"delete_after"`
}
