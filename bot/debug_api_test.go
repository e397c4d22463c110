package bot

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smanager/application/dto"
	"smanager/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCache struct {
	snapshot dto.ChannelCacheSnapshot
	tracked  map[int64]bool
}

func (s *stubCache) Snapshot() dto.ChannelCacheSnapshot { return s.snapshot }
func (s *stubCache) Tracks(channelID int64) bool        { return s.tracked[channelID] }

func newTestDebugAPI(dispatcher *recordingDispatcher) *DebugAPI {
	cache := &stubCache{
		snapshot: dto.ChannelCacheSnapshot{ScrimChannels: []int64{200}},
		tracked:  map[int64]bool{200: true},
	}
	return NewDebugAPI("127.0.0.1:0", dispatcher, cache)
}

func serve(api *DebugAPI, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, req)
	return rec
}

func TestDebugAPI_Health(t *testing.T) {
	rec := serve(newTestDebugAPI(&recordingDispatcher{}), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestDebugAPI_Cache(t *testing.T) {
	api := newTestDebugAPI(&recordingDispatcher{})

	rec := serve(api, http.MethodGet, "/debug/cache", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true, "data": {"scrim_channels": [200], "tourney_channels": null, "tagcheck_channels": null, "eztag_channels": null}}`, rec.Body.String())

	rec = serve(api, http.MethodGet, "/debug/cache/200", "")
	assert.JSONEq(t, `{"success": true, "data": {"tracked": true}}`, rec.Body.String())

	rec = serve(api, http.MethodGet, "/debug/cache/nope", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDebugAPI_ReplayEvent(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	api := newTestDebugAPI(dispatcher)

	rec := serve(api, http.MethodPost, "/debug/events",
		`{"event_id": "6f1c2a8e-3b7d-4c55-9a0e-2f4b8d1c9e77", "event_type": "guild_channel_delete", "payload": {"guild_id": 100, "channel_id": 200}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, &events.GuildChannelDeleteEvent{GuildID: 100, ChannelID: 200}, dispatcher.events[0])

	var resp DebugResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, map[string]interface{}{"event_id": "6f1c2a8e-3b7d-4c55-9a0e-2f4b8d1c9e77"}, resp.Data)
}

func TestDebugAPI_ReplayEventErrors(t *testing.T) {
	t.Run("invalid envelope", func(t *testing.T) {
		dispatcher := &recordingDispatcher{}
		rec := serve(newTestDebugAPI(dispatcher), http.MethodPost, "/debug/events", `{"event_type": "nope", "payload": {}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown event type")
		assert.Empty(t, dispatcher.events)
	})

	t.Run("handler failure", func(t *testing.T) {
		dispatcher := &recordingDispatcher{err: errors.New("db down")}
		rec := serve(newTestDebugAPI(dispatcher), http.MethodPost, "/debug/events",
			`{"event_type": "scrim_log", "payload": {"scrim_id": 7, "kind": "open"}}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "db down")
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := serve(newTestDebugAPI(&recordingDispatcher{}), http.MethodGet, "/debug/events", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
