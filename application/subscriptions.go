package application

import (
	"context"
	"fmt"
	"time"

	"smanager/domain"
	"smanager/domain/events"
)

// RegisterApplicationSubscriptions registers the esports event handlers
func RegisterApplicationSubscriptions(
	subscriber domain.EventSubscriber,
	uowFactory UnitOfWorkFactory,
	messenger Messenger,
	scheduler Scheduler,
	cache ChannelCache,
	deniedMessageDeleteDelay time.Duration,
) error {
	denyHandler := NewRegistrationDenyHandler(uowFactory, messenger, scheduler, deniedMessageDeleteDelay)
	logHandler := NewEsportsLogHandler(uowFactory, messenger)
	reserveHandler := NewReserveTimerHandler(uowFactory, messenger)
	channelHandler := NewChannelDeleteHandler(uowFactory, cache)
	deleteHandler := NewRegistrationDeleteHandler(uowFactory, messenger, scheduler)

	handlers := map[events.EventType]func(context.Context, interface{}) error{
		events.EventTypeScrimRegistrationDeny:   denyHandler.HandleScrimRegistrationDeny,
		events.EventTypeTourneyRegistrationDeny: denyHandler.HandleTourneyRegistrationDeny,
		events.EventTypeScrimLog:                logHandler.HandleScrimLog,
		events.EventTypeTourneyLog:              logHandler.HandleTourneyLog,
		events.EventTypeScrimReserveTimer:       reserveHandler.HandleReserveTimerComplete,
		events.EventTypeGuildChannelDelete:      channelHandler.HandleGuildChannelDelete,
		events.EventTypeScrimRegistrationDelete: deleteHandler.HandleScrimRegistrationDelete,
	}

	for _, eventType := range events.All() {
		handle, ok := handlers[eventType]
		if !ok {
			return fmt.Errorf("no handler for event type %s", eventType)
		}
		err := subscriber.Subscribe(eventType, func(ctx context.Context, event events.Event) error {
			return handle(ctx, event)
		})
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", eventType, err)
		}
	}

	return nil
}
