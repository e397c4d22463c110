package infrastructure

import (
	"encoding/json"
	"fmt"
	"time"

	"smanager/domain/events"

	"github.com/google/uuid"
)

// EventEnvelope is the wire format of events delivered over NATS and the debug API
type EventEnvelope struct {
	EventID   string           `json:"event_id"`
	EventType events.EventType `json:"event_type"`
	Timestamp time.Time        `json:"timestamp"`
	Payload   json.RawMessage  `json:"payload"`
}

// NewEventEnvelope wraps an event with a fresh ID
func NewEventEnvelope(event events.Event) (*EventEnvelope, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", event.Type(), err)
	}

	return &EventEnvelope{
		EventID:   uuid.NewString(),
		EventType: event.Type(),
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}, nil
}

// DecodeEventEnvelope parses an envelope and its typed payload.
// Envelopes without an ID are given one so log lines can still be correlated.
func DecodeEventEnvelope(data []byte) (*EventEnvelope, events.Event, error) {
	var envelope EventEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal event envelope: %w", err)
	}

	if envelope.EventID == "" {
		envelope.EventID = uuid.NewString()
	} else if _, err := uuid.Parse(envelope.EventID); err != nil {
		return nil, nil, fmt.Errorf("invalid event id %q: %w", envelope.EventID, err)
	}

	event, ok := events.New(envelope.EventType)
	if !ok {
		return nil, nil, fmt.Errorf("unknown event type: %s", envelope.EventType)
	}

	if len(envelope.Payload) == 0 {
		return nil, nil, fmt.Errorf("event %s has no payload", envelope.EventID)
	}
	if err := json.Unmarshal(envelope.Payload, event); err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s payload: %w", envelope.EventType, err)
	}

	return &envelope, event, nil
}
