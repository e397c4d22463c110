package entities

import "fmt"

// RegistrationMessage is a snapshot of the chat message a team registered with
type RegistrationMessage struct {
	ID           int64  `json:"id"`
	ChannelID    int64  `json:"channel_id"`
	GuildID      int64  `json:"guild_id"`
	AuthorID     int64  `json:"author_id"`
	AuthorTag    string `json:"author_tag"`
	MentionCount int    `json:"mention_count"`
}

// JumpURL is the link that opens the message in the client
func (m RegistrationMessage) JumpURL() string {
	return fmt.Sprintf("https://discord.com/channels/%d/%d/%d", m.GuildID, m.ChannelID, m.ID)
}

// Author renders the author the way the client displays them, falling back to a mention
func (m RegistrationMessage) Author() string {
	if m.AuthorTag != "" {
		return m.AuthorTag
	}
	return fmt.Sprintf("<@%d>", m.AuthorID)
}

// DenyRecord is an earlier registration that conflicts with a denied one
type DenyRecord struct {
	JumpURL string `json:"jump_url"`
}
