package services

import (
	"fmt"
	"strings"

	"smanager/domain/entities"
	"smanager/domain/utils"
)

// Embed colors used by esports notifications
const (
	ColorLog      = 0x00B1FF
	ColorDenied   = 0xE74C3C
	ColorAccepted = 0x2ECC71
)

// LogNotice is a registration lifecycle entry for a log channel
type LogNotice struct {
	Slotlist    string // sent as a plain message ahead of the embed when not empty
	Color       int
	Description string
	Important   bool // moderators get pinged
}

// WorkRoleText renders the role a registration opens for.
// roleExists tells whether the configured role is still present in the guild.
func WorkRoleText(target entities.RegistrationTarget, roleExists bool) string {
	if target.OpenRoleID == nil {
		return "None"
	}
	if *target.OpenRoleID == target.GuildID {
		return "@everyone"
	}
	if !roleExists {
		return "role-deleted"
	}
	return utils.RoleMention(*target.OpenRoleID)
}

// BuildScrimLogNotice composes the log entry for a scrim lifecycle event.
// It returns nil for kinds scrims do not log.
func BuildScrimLogNotice(target entities.RegistrationTarget, kind entities.EsportsLog, permissionUpdated bool, openRole string, slots []*entities.AssignedSlot) *LogNotice {
	registration := utils.ChannelMention(target.RegistrationChannelID)

	switch kind {
	case entities.EsportsLogOpen:
		return &LogNotice{
			Color:       ColorLog,
			Description: fmt.Sprintf("Registration opened for %s in %s(ScrimsID: `%d`)", openRole, registration, target.ID),
		}

	case entities.EsportsLogClosed:
		notice := &LogNotice{
			Color: ColorLog,
			Description: fmt.Sprintf("Registration closed for %s in %s(ScrimsID: `%d`)\n\nUse `smanager slotlist edit %d` to edit the slotlist.",
				openRole, registration, target.ID, target.ID),
		}
		if len(slots) > 0 {
			notice.Slotlist = TextSlotlist(slots)
		}
		markUnclosed(notice, permissionUpdated, registration)
		return notice
	}

	return nil
}

// BuildTourneyLogNotice composes the log entry for a tourney lifecycle event.
// msg is the accepted registration for EsportsLogSuccess.
func BuildTourneyLogNotice(target entities.RegistrationTarget, kind entities.EsportsLog, permissionUpdated bool, openRole string, msg *entities.RegistrationMessage) *LogNotice {
	registration := utils.ChannelMention(target.RegistrationChannelID)

	switch kind {
	case entities.EsportsLogClosed:
		notice := &LogNotice{
			Color:       ColorLog,
			Description: fmt.Sprintf("Registration closed for %s in %s(TourneyID: `%d`)", openRole, registration, target.ID),
		}
		markUnclosed(notice, permissionUpdated, registration)
		return notice

	case entities.EsportsLogSuccess:
		if msg == nil {
			return nil
		}
		return &LogNotice{
			Color: ColorAccepted,
			Description: fmt.Sprintf("Registration of [%s](%s) has been accepted in %s",
				msg.Author(), msg.JumpURL(), utils.ChannelMention(msg.ChannelID)),
		}
	}

	return nil
}

func markUnclosed(notice *LogNotice, permissionUpdated bool, registration string) {
	if permissionUpdated {
		return
	}
	notice.Important = true
	notice.Color = ColorDenied
	notice.Description += fmt.Sprintf("\nI couldn't close %s.", registration)
}

// TextSlotlist renders assigned slots as a code block, one "Slot NN  ->  TEAM" line each
func TextSlotlist(slots []*entities.AssignedSlot) string {
	lines := make([]string, 0, len(slots))
	for _, slot := range slots {
		lines = append(lines, fmt.Sprintf("Slot %02d  ->  %s", slot.Num, slot.TeamName))
	}
	return fmt.Sprintf("```%s```", strings.Join(lines, "\n"))
}

// ReservationOverText announces that a reservation lease ran out
func ReservationOverText(teamName, user string, scrimID int64) string {
	return fmt.Sprintf("Reservation period of **%s** (%s) is now over.\nSlot will not be reserved for them in Scrim (`%d`).",
		utils.Title(teamName), user, scrimID)
}

// SlotDeletedText announces that a slot was freed because its registration message was deleted
func SlotDeletedText(msg entities.RegistrationMessage, scrimID int64) string {
	return fmt.Sprintf("Slot of %s was deleted from Scrim: %d, because their registration was deleted from %s",
		utils.UserMention(msg.AuthorID), scrimID, utils.ChannelMention(msg.ChannelID))
}
