package infrastructure

import (
	"encoding/json"
	"testing"

	"smanager/domain/entities"
	"smanager/domain/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEventEnvelope(t *testing.T) {
	data := []byte(`{
		"event_id": "6f1c2a8e-3b7d-4c55-9a0e-2f4b8d1c9e77",
		"event_type": "scrim_log",
		"timestamp": "2026-01-02T15:04:05Z",
		"payload": {"scrim_id": 7, "kind": "closed", "permission_updated": true}
	}`)

	envelope, event, err := DecodeEventEnvelope(data)
	require.NoError(t, err)

	assert.Equal(t, "6f1c2a8e-3b7d-4c55-9a0e-2f4b8d1c9e77", envelope.EventID)
	assert.Equal(t, events.EventTypeScrimLog, envelope.EventType)

	logEvent, ok := event.(*events.ScrimLogEvent)
	require.True(t, ok)
	assert.Equal(t, int64(7), logEvent.ScrimID)
	assert.Equal(t, entities.EsportsLogClosed, logEvent.Kind)
	assert.True(t, logEvent.PermissionUpdated)
}

func TestDecodeEventEnvelope_AssignsMissingID(t *testing.T) {
	data := []byte(`{"event_type": "guild_channel_delete", "payload": {"guild_id": 1, "channel_id": 2}}`)

	envelope, event, err := DecodeEventEnvelope(data)
	require.NoError(t, err)

	_, err = uuid.Parse(envelope.EventID)
	assert.NoError(t, err)
	assert.Equal(t, &events.GuildChannelDeleteEvent{GuildID: 1, ChannelID: 2}, event)
}

func TestDecodeEventEnvelope_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"not json", `nope`, "failed to unmarshal event envelope"},
		{"bad id", `{"event_id": "x", "event_type": "scrim_log", "payload": {}}`, "invalid event id"},
		{"unknown type", `{"event_type": "ticket_created", "payload": {}}`, "unknown event type"},
		{"missing payload", `{"event_type": "scrim_log"}`, "has no payload"},
		{"bad payload", `{"event_type": "scrim_log", "payload": {"scrim_id": "seven"}}`, "failed to decode scrim_log payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeEventEnvelope([]byte(tt.data))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewEventEnvelope_RoundTrip(t *testing.T) {
	original := &events.ScrimRegistrationDeleteEvent{
		ScrimID: 7,
		Message: entities.RegistrationMessage{ID: 300, ChannelID: 200, GuildID: 100, AuthorID: 42},
		SlotID:  11,
		SlotNum: 3,
	}

	envelope, err := NewEventEnvelope(original)
	require.NoError(t, err)
	assert.Equal(t, events.EventTypeScrimRegistrationDelete, envelope.EventType)
	assert.False(t, envelope.Timestamp.IsZero())

	data, err := json.Marshal(envelope)
	require.NoError(t, err)

	decoded, event, err := DecodeEventEnvelope(data)
	require.NoError(t, err)
	assert.Equal(t, envelope.EventID, decoded.EventID)
	assert.Equal(t, original, event)
}
