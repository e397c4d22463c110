package application

import (
	"context"
	"fmt"

	"smanager/application/dto"
	"smanager/domain/events"
	"smanager/domain/services"

	log "github.com/sirupsen/logrus"
)

// RegistrationDeleteHandler frees the slot of a deleted scrim registration
type RegistrationDeleteHandler struct {
	uowFactory UnitOfWorkFactory
	messenger  Messenger
	scheduler  Scheduler
}

// NewRegistrationDeleteHandler creates a new RegistrationDeleteHandler
func NewRegistrationDeleteHandler(uowFactory UnitOfWorkFactory, messenger Messenger, scheduler Scheduler) *RegistrationDeleteHandler {
	return &RegistrationDeleteHandler{
		uowFactory: uowFactory,
		messenger:  messenger,
		scheduler:  scheduler,
	}
}

// HandleScrimRegistrationDelete handles ScrimRegistrationDeleteEvent
func (h *RegistrationDeleteHandler) HandleScrimRegistrationDelete(ctx context.Context, event interface{}) error {
	e, err := AssertEventType[*events.ScrimRegistrationDeleteEvent](event, "ScrimRegistrationDeleteEvent")
	if err != nil {
		return err
	}

	msg := e.Message
	logger := log.WithFields(log.Fields{
		"scrimID": e.ScrimID,
		"slotID":  e.SlotID,
		"slotNum": e.SlotNum,
		"userID":  msg.AuthorID,
	})

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
		logger.Debug("Scrim no longer exists, ignoring registration delete")
		return nil
	}

	slotService := services.NewSlotService(uow.AssignedSlotRepository(), uow.ScrimRepository())
	freed, err := slotService.FreeAssignedSlot(ctx, scrim.ID, e.SlotID, e.SlotNum)
	if err != nil {
		return err
	}
	if !freed {
		logger.Debug("Assigned slot already freed, ignoring registration delete")
		return nil
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit slot release: %w", err)
	}

	logger.Info("Freed slot of deleted registration")

	if scrim.RoleID != nil {
		guildID, roleID := scrim.GuildID, *scrim.RoleID
		h.scheduler.Go("remove scrim role", func(ctx context.Context) error {
			return h.messenger.RemoveRole(ctx, guildID, msg.AuthorID, roleID)
		})
	}

	target := scrim.Target()
	if !logChannelAvailable(ctx, h.messenger, target) {
		return nil
	}

	err = h.messenger.Send(ctx, *target.LogChannelID, dto.OutgoingMessage{
		Embed: &dto.Embed{
			Color:       services.ColorDenied,
			Description: services.SlotDeletedText(msg, scrim.ID),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to log deleted registration: %w", err)
	}
	return nil
}
