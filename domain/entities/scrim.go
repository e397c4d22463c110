package entities

import "time"

// DefaultCrossEmoji is reacted on denied registrations when a scrim or tourney has none configured
const DefaultCrossEmoji = "❌"

// Scrim is a recurring practice-match registration event
type Scrim struct {
	ID                    int64     `db:"id"`
	GuildID               int64     `db:"guild_id"`
	Name                  string    `db:"name"`
	RegistrationChannelID int64     `db:"registration_channel_id"`
	LogChannelID          *int64    `db:"log_channel_id"`
	ModRoleID             *int64    `db:"mod_role_id"`
	RoleID                *int64    `db:"role_id"`      // granted to accepted teams
	OpenRoleID            *int64    `db:"open_role_id"` // role registration opens for
	RequiredMentions      int       `db:"required_mentions"`
	AutodeleteRejects     bool      `db:"autodelete_rejects"`
	CrossEmoji            string    `db:"cross_emoji"`
	AvailableSlots        []int32   `db:"available_slots"`
	CreatedAt             time.Time `db:"created_at"`
}

// Target returns the registration target view used by notification formatting
func (s *Scrim) Target() RegistrationTarget {
	return RegistrationTarget{
		Kind:                  TargetScrim,
		ID:                    s.ID,
		GuildID:               s.GuildID,
		RegistrationChannelID: s.RegistrationChannelID,
		LogChannelID:          s.LogChannelID,
		ModRoleID:             s.ModRoleID,
		OpenRoleID:            s.OpenRoleID,
		RequiredMentions:      s.RequiredMentions,
		AutodeleteRejected:    s.AutodeleteRejects,
		CrossEmoji:            s.crossEmoji(),
	}
}

func (s *Scrim) crossEmoji() string {
	if s.CrossEmoji == "" {
		return DefaultCrossEmoji
	}
	return s.CrossEmoji
}
