package application

import (
	"context"
	"fmt"

	"smanager/application/dto"
	"smanager/domain/entities"
	"smanager/domain/events"
	"smanager/domain/services"
	"smanager/domain/utils"

	log "github.com/sirupsen/logrus"
)

// EsportsLogHandler posts registration lifecycle entries to log channels
type EsportsLogHandler struct {
	uowFactory UnitOfWorkFactory
	messenger  Messenger
}

// NewEsportsLogHandler creates a new EsportsLogHandler
func NewEsportsLogHandler(uowFactory UnitOfWorkFactory, messenger Messenger) *EsportsLogHandler {
	return &EsportsLogHandler{
		uowFactory: uowFactory,
		messenger:  messenger,
	}
}

// HandleScrimLog handles ScrimLogEvent
func (h *EsportsLogHandler) HandleScrimLog(ctx context.Context, event interface{}) error {
	e, err := AssertEventType[*events.ScrimLogEvent](event, "ScrimLogEvent")
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	scrim, err := uow.ScrimRepository().GetByID(ctx, e.ScrimID)
	if err != nil {
		return fmt.Errorf("failed to load scrim %d: %w", e.ScrimID, err)
	}
	if scrim == nil {
		return nil
	}

	target := scrim.Target()
	if !logChannelAvailable(ctx, h.messenger, target) {
		return nil
	}

	var slots []*entities.AssignedSlot
	if e.Kind == entities.EsportsLogClosed {
		slots, err = uow.AssignedSlotRepository().GetByScrim(ctx, scrim.ID)
		if err != nil {
			return fmt.Errorf("failed to load slotlist of scrim %d: %w", scrim.ID, err)
		}
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit read-only transaction: %w", err)
	}

	notice := services.BuildScrimLogNotice(target, e.Kind, e.PermissionUpdated, h.openRoleText(ctx, target), slots)
	return h.post(ctx, target, e.Kind, notice)
}

// HandleTourneyLog handles TourneyLogEvent
func (h *EsportsLogHandler) HandleTourneyLog(ctx context.Context, event interface{}) error {
	e, err := AssertEventType[*events.TourneyLogEvent](event, "TourneyLogEvent")
	if err != nil {
		return err
	}

	tourney, err := loadTourney(ctx, h.uowFactory, e.TourneyID)
	if err != nil {
		return fmt.Errorf("failed to load tourney %d: %w", e.TourneyID, err)
	}
	if tourney == nil {
		return nil
	}

	target := tourney.Target()
	if !logChannelAvailable(ctx, h.messenger, target) {
		return nil
	}

	notice := services.BuildTourneyLogNotice(target, e.Kind, e.PermissionUpdated, h.openRoleText(ctx, target), e.Message)
	return h.post(ctx, target, e.Kind, notice)
}

func (h *EsportsLogHandler) openRoleText(ctx context.Context, target entities.RegistrationTarget) string {
	roleExists := false
	if target.OpenRoleID != nil && *target.OpenRoleID != target.GuildID {
		roleExists = h.messenger.RoleExists(ctx, target.GuildID, *target.OpenRoleID)
	}
	return services.WorkRoleText(target, roleExists)
}

func (h *EsportsLogHandler) post(ctx context.Context, target entities.RegistrationTarget, kind entities.EsportsLog, notice *services.LogNotice) error {
	if notice == nil {
		log.WithFields(log.Fields{
			"kind":     target.Kind,
			"targetID": target.ID,
			"log":      kind,
		}).Debug("Nothing to log")
		return nil
	}

	logChannelID := *target.LogChannelID

	if notice.Slotlist != "" {
		if err := h.messenger.Send(ctx, logChannelID, dto.OutgoingMessage{Content: notice.Slotlist}); err != nil {
			return fmt.Errorf("failed to send slotlist: %w", err)
		}
	}

	msg := dto.OutgoingMessage{
		Embed:             &dto.Embed{Color: notice.Color, Description: notice.Description},
		AllowRoleMentions: true,
	}
	if notice.Important && target.ModRoleID != nil && h.messenger.RoleExists(ctx, target.GuildID, *target.ModRoleID) {
		msg.Content = utils.RoleMention(*target.ModRoleID)
	}

	if err := h.messenger.Send(ctx, logChannelID, msg); err != nil {
		return fmt.Errorf("failed to send %s log: %w", kind, err)
	}
	return nil
}
