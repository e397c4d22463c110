package application

import (
	"context"
	"fmt"

	"smanager/domain/events"
	"smanager/domain/services"

	log "github.com/sirupsen/logrus"
)

// ChannelDeleteHandler forgets everything bound to a deleted guild channel
type ChannelDeleteHandler struct {
	uowFactory UnitOfWorkFactory
	cache      ChannelCache
}

// NewChannelDeleteHandler creates a new ChannelDeleteHandler
func NewChannelDeleteHandler(uowFactory UnitOfWorkFactory, cache ChannelCache) *ChannelDeleteHandler {
	return &ChannelDeleteHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// HandleGuildChannelDelete handles GuildChannelDeleteEvent
func (h *ChannelDeleteHandler) HandleGuildChannelDelete(ctx context.Context, event interface{}) error {
	e, err := AssertEventType[*events.GuildChannelDeleteEvent](event, "GuildChannelDeleteEvent")
	if err != nil {
		return err
	}

	h.cache.Evict(e.ChannelID)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	cleanupService := services.NewChannelCleanupService(
		uow.ScrimRepository(),
		uow.TourneyRepository(),
		uow.TagCheckRepository(),
		uow.EasyTagRepository(),
	)

	result, err := cleanupService.PurgeChannel(ctx, e.ChannelID)
	if err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit channel cleanup: %w", err)
	}

	if result.Total() > 0 {
		log.WithFields(log.Fields{
			"guildID":   e.GuildID,
			"channelID": e.ChannelID,
			"scrims":    result.Scrims,
			"tourneys":  result.Tourneys,
			"tagChecks": result.TagChecks,
			"easyTags":  result.EasyTags,
		}).Info("Purged deleted channel")
	}

	return nil
}
