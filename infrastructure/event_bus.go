package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"smanager/domain/events"
	"smanager/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

// Handler is a function that handles events
type Handler func(ctx context.Context, event events.Event) error

// EventBus routes events to their handlers in-process.
// Every event source (NATS, the Discord gateway, the debug API) dispatches through it.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[events.EventType][]Handler
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[events.EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *EventBus) Subscribe(eventType events.EventType, handler func(context.Context, events.Event) error) error {
	if handler == nil {
		return fmt.Errorf("nil handler for event type %s", eventType)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
	return nil
}

// Dispatch runs every handler of the event's type synchronously, in subscription order.
// A failing or panicking handler does not stop the others; their errors are joined.
func (b *EventBus) Dispatch(ctx context.Context, event events.Event) error {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	if len(handlers) == 0 {
		log.WithField("eventType", event.Type()).Debug("No handlers for event type")
		return nil
	}

	var errs []error
	outcome := observability.OutcomeSuccess
	for i, handler := range handlers {
		panicked, err := b.call(ctx, event, i, handler)
		if err == nil {
			continue
		}
		errs = append(errs, err)
		if panicked {
			outcome = observability.OutcomePanic
		} else if outcome != observability.OutcomePanic {
			outcome = observability.OutcomeError
		}
	}

	observability.GetMetrics().RecordEventHandled(string(event.Type()), outcome)
	return errors.Join(errs...)
}

func (b *EventBus) call(ctx context.Context, event events.Event, index int, handler Handler) (panicked bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"eventType":    event.Type(),
				"handlerIndex": index,
				"panic":        r,
			}).Error("Event handler panicked")
			panicked = true
			err = fmt.Errorf("handler %d for %s panicked: %v", index, event.Type(), r)
		}
	}()

	if err := handler(ctx, event); err != nil {
		log.WithFields(log.Fields{
			"eventType":    event.Type(),
			"handlerIndex": index,
			"error":        err,
		}).Error("Event handler failed")
		return false, err
	}
	return false, nil
}
