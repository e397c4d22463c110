package entities

import "time"

// Tourney is a one-off tournament registration event
type Tourney struct {
	ID                    int64     `db:"id"`
	GuildID               int64     `db:"guild_id"`
	Name                  string    `db:"name"`
	RegistrationChannelID int64     `db:"registration_channel_id"`
	LogChannelID          *int64    `db:"log_channel_id"`
	ModRoleID             *int64    `db:"mod_role_id"`
	RoleID                *int64    `db:"role_id"`
	OpenRoleID            *int64    `db:"open_role_id"`
	RequiredMentions      int       `db:"required_mentions"`
	AutodeleteRejected    bool      `db:"autodelete_rejected"`
	CrossEmoji            string    `db:"cross_emoji"`
	CreatedAt             time.Time `db:"created_at"`
}

// Target returns the registration target view used by notification formatting
func (t *Tourney) Target() RegistrationTarget {
	emoji := t.CrossEmoji
	if emoji == "" {
		emoji = DefaultCrossEmoji
	}
	return RegistrationTarget{
		Kind:                  TargetTourney,
		ID:                    t.ID,
		GuildID:               t.GuildID,
		RegistrationChannelID: t.RegistrationChannelID,
		LogChannelID:          t.LogChannelID,
		ModRoleID:             t.ModRoleID,
		OpenRoleID:            t.OpenRoleID,
		RequiredMentions:      t.RequiredMentions,
		AutodeleteRejected:    t.AutodeleteRejected,
		CrossEmoji:            emoji,
	}
}
