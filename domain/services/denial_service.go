package services

import (
	"fmt"
	"time"

	"smanager/domain/entities"
	"smanager/domain/utils"
)

const (
	// DenialReplyLifetime is how long a denial reply stays in the registration channel
	DenialReplyLifetime = 5 * time.Second

	// FakeTagReplyLifetime is longer so the team can follow the link to the earlier registration
	FakeTagReplyLifetime = 10 * time.Second
)

// DenialNotice is what gets sent for a rejected registration
type DenialNotice struct {
	Reply            string        // shown to the team as a reply
	ReplyDeleteAfter time.Duration // how long the reply stays
	LogReason        string        // appended to the log channel entry
}

// BuildDenialNotice composes the reply and log reason for a rejected registration.
// Scrims and tourneys share most texts; they differ in wording and in the command hints given to moderators.
func BuildDenialNotice(target entities.RegistrationTarget, reason entities.RegDeny, msg entities.RegistrationMessage, records []entities.DenyRecord) (*DenialNotice, error) {
	author := msg.Author()
	notice := &DenialNotice{ReplyDeleteAfter: DenialReplyLifetime}
	isScrim := target.Kind == entities.TargetScrim

	switch reason {
	case entities.RegDenyBotMention:
		notice.Reply = "Don't mention Bots. Mention your real teammates."
		notice.LogReason = "Mentioned Bots."

	case entities.RegDenyNoMention:
		notice.Reply = fmt.Sprintf("%s, **`%s`** required for successful registration.",
			author, utils.Plural(target.RequiredMentions, "mention is|mentions are"))
		notice.LogReason = fmt.Sprintf("Insufficient Mentions (`%d/%d`)", msg.MentionCount, target.RequiredMentions)

	case entities.RegDenyBanned:
		if isScrim {
			notice.Reply = fmt.Sprintf("%s, You are banned from the scrims. You cannot register.", author)
			notice.LogReason = "They are banned from scrims."
		} else {
			notice.Reply = fmt.Sprintf("%s, You are banned from the tournament. You cannot register.", author)
			notice.LogReason = "They are banned from tournament."
		}

	case entities.RegDenyMultiRegister:
		notice.Reply = fmt.Sprintf("%s, This server doesn't allow multiple registerations.", author)
		hint := fmt.Sprintf("tourney edit %d", target.ID)
		if isScrim {
			hint = fmt.Sprintf("smanager toggle %d multiregister", target.ID)
		}
		notice.LogReason = fmt.Sprintf("They have already registered once.\n\nIf you wish to allow multiple registerations,\nuse: `%s`", hint)

	case entities.RegDenyNoTeamName:
		notice.Reply = fmt.Sprintf("%s, Team Name is required to register.", author)
		hint := fmt.Sprintf("tourney edit %d", target.ID)
		if isScrim {
			hint = fmt.Sprintf("smanager edit %d", target.ID)
		}
		notice.LogReason = fmt.Sprintf("Teamname compulsion is on and I couldn't find teamname in their registration\n\nIf you wish allow without teamname,\nUse: `%s`", hint)

	case entities.RegDenyDuplicate:
		if isScrim {
			notice.Reply = fmt.Sprintf("%s, Someone has already registered with the same teamname.", author)
			notice.LogReason = fmt.Sprintf("No duplicate team names is ON and someone has already registered with the same team name\nIf you wish to allow duplicate team names,\nUse: `smanager edit %d`", target.ID)
		} else {
			notice.Reply = fmt.Sprintf("%s, Someone already registered with the same team name.", author)
			notice.LogReason = "Duplicate teamname. Someone already registered with the same team name."
		}

	case entities.RegDenyNoLines:
		notice.Reply = fmt.Sprintf("%s, Your registration message is too short. It seems you missed some required information.", author)
		notice.LogReason = "Insufficient lines in their registration message."

	case entities.RegDenyFakeTag:
		if len(records) == 0 || records[0].JumpURL == "" {
			return nil, fmt.Errorf("fake tag denial for message %d carries no conflicting registration", msg.ID)
		}
		jumpURL := records[0].JumpURL
		notice.Reply = fmt.Sprintf("%s, Someone already registered with the same mentions %s\n\n`If you think this is a mistake contact moderators ASAP.`", author, jumpURL)
		notice.ReplyDeleteAfter = FakeTagReplyLifetime
		notice.LogReason = fmt.Sprintf("Fake tag used. %s", jumpURL)

	default:
		return nil, fmt.Errorf("unknown registration deny reason %q", reason)
	}

	return notice, nil
}

// DenialLogText is the log channel entry for a rejected registration
func DenialLogText(msg entities.RegistrationMessage, logReason string) string {
	return fmt.Sprintf("Registration of [%s](%s) has been denied in %s\n**Reason:** %s",
		msg.Author(), msg.JumpURL(), utils.ChannelMention(msg.ChannelID), logReason)
}
