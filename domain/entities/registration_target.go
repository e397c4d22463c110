package entities

// TargetKind distinguishes scrims from tourneys where their notifications differ
type TargetKind string

const (
	TargetScrim   TargetKind = "scrim"
	TargetTourney TargetKind = "tourney"
)

// RegistrationTarget is the subset of a scrim or tourney that notifications need
type RegistrationTarget struct {
	Kind                  TargetKind
	ID                    int64
	GuildID               int64
	RegistrationChannelID int64
	LogChannelID          *int64
	ModRoleID             *int64
	OpenRoleID            *int64
	RequiredMentions      int
	AutodeleteRejected    bool
	CrossEmoji            string
}

// HasLogChannel reports whether a log channel is configured
func (t RegistrationTarget) HasLogChannel() bool {
	return t.LogChannelID != nil && *t.LogChannelID != 0
}
