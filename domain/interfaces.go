package domain

import (
	"context"

	"smanager/domain/events"
)

// EventSubscriber is an interface for subscribing to domain events
// This allows the application layer to react to domain events without
// depending on the infrastructure implementation
type EventSubscriber interface {
	Subscribe(eventType events.EventType, handler func(context.Context, events.Event) error) error
}
