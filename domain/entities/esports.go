package entities

// RegDeny is the reason a registration message was rejected
type RegDeny string

const (
	RegDenyBotMention    RegDeny = "botmention"
	RegDenyNoMention     RegDeny = "nomention"
	RegDenyBanned        RegDeny = "banned"
	RegDenyMultiRegister RegDeny = "multiregister"
	RegDenyNoTeamName    RegDeny = "noteamname"
	RegDenyDuplicate     RegDeny = "duplicate"
	RegDenyNoLines       RegDeny = "nolines"
	RegDenyFakeTag       RegDeny = "faketag"
)

// IsValid reports whether r is a known reason
func (r RegDeny) IsValid() bool {
	switch r {
	case RegDenyBotMention, RegDenyNoMention, RegDenyBanned, RegDenyMultiRegister,
		RegDenyNoTeamName, RegDenyDuplicate, RegDenyNoLines, RegDenyFakeTag:
		return true
	}
	return false
}

// EsportsLog is the kind of registration lifecycle log
type EsportsLog string

const (
	EsportsLogOpen    EsportsLog = "open"
	EsportsLogClosed  EsportsLog = "closed"
	EsportsLogSuccess EsportsLog = "success"
)

