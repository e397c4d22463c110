package application

import (
	"context"
	"fmt"
	"time"

	"smanager/application/dto"
	"smanager/domain/entities"
	"smanager/domain/events"
	"smanager/domain/services"

	log "github.com/sirupsen/logrus"
)

// RegistrationDenyHandler answers rejected scrim and tourney registrations
type RegistrationDenyHandler struct {
	uowFactory               UnitOfWorkFactory
	messenger                Messenger
	scheduler                Scheduler
	deniedMessageDeleteDelay time.Duration
}

// NewRegistrationDenyHandler creates a new RegistrationDenyHandler
func NewRegistrationDenyHandler(
	uowFactory UnitOfWorkFactory,
	messenger Messenger,
	scheduler Scheduler,
	deniedMessageDeleteDelay time.Duration,
) *RegistrationDenyHandler {
	return &RegistrationDenyHandler{
		uowFactory:               uowFactory,
		messenger:                messenger,
		scheduler:                scheduler,
		deniedMessageDeleteDelay: deniedMessageDeleteDelay,
	}
}

// HandleScrimRegistrationDeny handles ScrimRegistrationDenyEvent
func (h *RegistrationDenyHandler) HandleScrimRegistrationDeny(ctx context.Context, event interface{}) error {
	e, err := AssertEventType[*events.ScrimRegistrationDenyEvent](event, "ScrimRegistrationDenyEvent")
	if err != nil {
		return err
	}
	if !e.Reason.IsValid() {
		return fmt.Errorf("unknown registration deny reason %q", e.Reason)
	}

	scrim, err := loadScrim(ctx, h.uowFactory, e.ScrimID)
	if err != nil {
		return fmt.Errorf("failed to load scrim %d: %w", e.ScrimID, err)
	}
	if scrim == nil {
		log.WithField("scrimID", e.ScrimID).Debug("Scrim no longer exists, dropping registration denial")
		return nil
	}

	return h.deny(ctx, scrim.Target(), e.RegistrationDenial)
}

// HandleTourneyRegistrationDeny handles TourneyRegistrationDenyEvent
func (h *RegistrationDenyHandler) HandleTourneyRegistrationDeny(ctx context.Context, event interface{}) error {
	e, err := AssertEventType[*events.TourneyRegistrationDenyEvent](event, "TourneyRegistrationDenyEvent")
	if err != nil {
		return err
	}
	if !e.Reason.IsValid() {
		return fmt.Errorf("unknown registration deny reason %q", e.Reason)
	}

	tourney, err := loadTourney(ctx, h.uowFactory, e.TourneyID)
	if err != nil {
		return fmt.Errorf("failed to load tourney %d: %w", e.TourneyID, err)
	}
	if tourney == nil {
		log.WithField("tourneyID", e.TourneyID).Debug("Tourney no longer exists, dropping registration denial")
		return nil
	}

	return h.deny(ctx, tourney.Target(), e.RegistrationDenial)
}

func (h *RegistrationDenyHandler) deny(ctx context.Context, target entities.RegistrationTarget, denial events.RegistrationDenial) error {
	msg := denial.Message
	logger := log.WithFields(log.Fields{
		"kind":      target.Kind,
		"targetID":  target.ID,
		"messageID": msg.ID,
		"reason":    denial.Reason,
	})

	if !logChannelAvailable(ctx, h.messenger, target) {
		logger.Debug("No log channel, skipping registration denial")
		return nil
	}

	notice, err := services.BuildDenialNotice(target, denial.Reason, msg, denial.Records)
	if err != nil {
		return err
	}

	if err := h.messenger.AddReaction(ctx, msg.ChannelID, msg.ID, target.CrossEmoji); err != nil {
		return fmt.Errorf("failed to react to denied registration: %w", err)
	}

	replyID, err := h.messenger.Reply(ctx, msg.ChannelID, msg.ID, dto.Embed{
		Color:       services.ColorDenied,
		Description: notice.Reply,
	})
	if err != nil {
		return fmt.Errorf("failed to reply to denied registration: %w", err)
	}
	if replyID != 0 {
		h.scheduler.After(notice.ReplyDeleteAfter, "delete denial reply", func(ctx context.Context) error {
			return h.messenger.DeleteMessage(ctx, msg.ChannelID, replyID)
		})
	}

	if target.AutodeleteRejected {
		h.scheduler.After(h.deniedMessageDeleteDelay, "delete denied registration", func(ctx context.Context) error {
			return h.messenger.DeleteMessage(ctx, msg.ChannelID, msg.ID)
		})
	}

	err = h.messenger.Send(ctx, *target.LogChannelID, dto.OutgoingMessage{
		Embed: &dto.Embed{
			Color:       services.ColorDenied,
			Description: services.DenialLogText(msg, notice.LogReason),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to log denied registration: %w", err)
	}

	logger.Info("Registration denied")
	return nil
}
