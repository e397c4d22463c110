package infrastructure

import (
	"context"
	"fmt"

	"smanager/domain/events"
	"smanager/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

type subjectSubscriber interface {
	Subscribe(subject string, handler func([]byte) error) error
}

type eventDispatcher interface {
	Dispatch(ctx context.Context, event events.Event) error
}

// NATSEventSubscriber consumes esports subjects and forwards decoded events to the event bus
type NATSEventSubscriber struct {
	client        subjectSubscriber
	subjectMapper *EventSubjectMapper
	dispatcher    eventDispatcher
}

// NewNATSEventSubscriber creates a new NATS event subscriber
func NewNATSEventSubscriber(client subjectSubscriber, subjectMapper *EventSubjectMapper, dispatcher eventDispatcher) *NATSEventSubscriber {
	return &NATSEventSubscriber{
		client:        client,
		subjectMapper: subjectMapper,
		dispatcher:    dispatcher,
	}
}

// Start subscribes to every esports subject. Handlers run with ctx.
func (s *NATSEventSubscriber) Start(ctx context.Context) error {
	for _, subject := range s.subjectMapper.GetAllSubjects() {
		subject := subject
		if err := s.client.Subscribe(subject, func(data []byte) error {
			return s.handleMessage(ctx, subject, data)
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *NATSEventSubscriber) handleMessage(ctx context.Context, subject string, data []byte) error {
	envelope, event, err := DecodeEventEnvelope(data)
	if err != nil {
		log.WithFields(log.Fields{
			"subject":     subject,
			"payloadSize": len(data),
			"error":       err,
		}).Error("Failed to decode event envelope")
		observability.GetMetrics().RecordNATSMessageReceived(subject, observability.OutcomeError)
		return fmt.Errorf("failed to decode message on %s: %w", subject, err)
	}

	expected, err := s.subjectMapper.MapSubjectToEventType(subject)
	if err != nil || expected != envelope.EventType {
		log.WithFields(log.Fields{
			"subject":   subject,
			"eventType": envelope.EventType,
			"eventId":   envelope.EventID,
		}).Warn("Event type does not match subject")
		observability.GetMetrics().RecordNATSMessageReceived(subject, observability.OutcomeError)
		return fmt.Errorf("event %s of type %s does not belong on %s", envelope.EventID, envelope.EventType, subject)
	}

	logger := log.WithFields(log.Fields{
		"subject":   subject,
		"eventType": envelope.EventType,
		"eventId":   envelope.EventID,
	})
	logger.Debug("Dispatching NATS event")

	if err := s.dispatcher.Dispatch(ctx, event); err != nil {
		logger.WithError(err).Error("Event handling failed")
		observability.GetMetrics().RecordNATSMessageReceived(subject, observability.OutcomeError)
		return err
	}

	observability.GetMetrics().RecordNATSMessageReceived(subject, observability.OutcomeSuccess)
	logger.Debug("Successfully processed NATS event")
	return nil
}
