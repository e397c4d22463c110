package application

import (
	"context"
	"fmt"

	"smanager/application/dto"
	"smanager/domain/events"
	"smanager/domain/services"
	"smanager/domain/utils"
	"smanager/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

// ReserveTimerHandler releases slot reservations whose timer fired
type ReserveTimerHandler struct {
	uowFactory UnitOfWorkFactory
	messenger  Messenger
}

// NewReserveTimerHandler creates a new ReserveTimerHandler
func NewReserveTimerHandler(uowFactory UnitOfWorkFactory, messenger Messenger) *ReserveTimerHandler {
	return &ReserveTimerHandler{
		uowFactory: uowFactory,
		messenger:  messenger,
	}
}

// HandleReserveTimerComplete handles ScrimReserveTimerEvent
func (h *ReserveTimerHandler) HandleReserveTimerComplete(ctx context.Context, event interface{}) error {
	e, err := AssertEventType[*events.ScrimReserveTimerEvent](event, "ScrimReserveTimerEvent")
	if err != nil {
		return err
	}

	payload, err := e.Timer.ReservePayload()
	if err != nil {
		return err
	}

	logger := log.WithFields(log.Fields{
		"timerID": e.Timer.ID,
		"scrimID": payload.ScrimID,
		"userID":  payload.UserID,
	})

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	scrim, err := uow.ScrimRepository().GetByID(ctx, payload.ScrimID)
	if err != nil {
		return fmt.Errorf("failed to load scrim %d: %w", payload.ScrimID, err)
	}
	if scrim == nil {
		logger.Debug("Scrim no longer exists, ignoring reservation timer")
		return nil
	}

	if !h.messenger.InGuild(scrim.GuildID) {
		logger.Debug("Not in scrim guild, ignoring reservation timer")
		return nil
	}

	reservationService := services.NewReservationService(uow.ReservedSlotRepository())
	released, err := reservationService.ReleaseExpired(ctx, payload.ScrimID, payload.UserID, e.Timer.Expires)
	if err != nil {
		return err
	}
	if !released {
		return nil
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit reservation release: %w", err)
	}

	observability.GetMetrics().RecordReservationReleased()
	logger.Info("Released expired slot reservation")

	target := scrim.Target()
	if !logChannelAvailable(ctx, h.messenger, target) || !h.messenger.CanSend(ctx, *target.LogChannelID) {
		return nil
	}

	user := h.messenger.UserTag(ctx, payload.UserID)
	if user == "" {
		user = utils.UserMention(payload.UserID)
	}

	err = h.messenger.Send(ctx, *target.LogChannelID, dto.OutgoingMessage{
		Embed: &dto.Embed{
			Color:       services.ColorAccepted,
			Description: services.ReservationOverText(payload.TeamName, user, payload.ScrimID),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to log released reservation: %w", err)
	}
	return nil
}
