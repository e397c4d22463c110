package dto

// Embed is a single-description Discord embed
type Embed struct {
	Color       int
	Description string
}

// OutgoingMessage is a message posted to a channel.
// Content and Embed may each be empty but not both.
type OutgoingMessage struct {
	Content           string
	Embed             *Embed
	AllowRoleMentions bool // role mentions in Content ping the role
}

// ChannelCacheSnapshot is the debug view of the in-memory channel caches
type ChannelCacheSnapshot struct {
	ScrimChannels    []int64 `json:"scrim_channels"`
	TourneyChannels  []int64 `json:"tourney_channels"`
	TagCheckChannels []int64 `json:"tagcheck_channels"`
	EasyTagChannels  []int64 `json:"eztag_channels"`
}
