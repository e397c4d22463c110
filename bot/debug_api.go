package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"smanager/application/dto"
	"smanager/bot/common"
	"smanager/infrastructure"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

const maxDebugEventSize = 1 << 20

// DebugResponse represents the response from a debug endpoint
type DebugResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type channelCacheView interface {
	Snapshot() dto.ChannelCacheSnapshot
	Tracks(channelID int64) bool
}

// DebugAPI is an internal HTTP API for inspecting the bot and replaying events
type DebugAPI struct {
	router     chi.Router
	server     *http.Server
	dispatcher eventDispatcher
	cache      channelCacheView
}

// NewDebugAPI builds the debug routes; Start serves them on addr
func NewDebugAPI(addr string, dispatcher eventDispatcher, cache channelCacheView) *DebugAPI {
	api := &DebugAPI{
		dispatcher: dispatcher,
		cache:      cache,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Route("/debug", func(r chi.Router) {
		r.Get("/cache", api.handleCacheSnapshot)
		r.Get("/cache/{channelID}", api.handleCacheLookup)
		r.Post("/events", api.handleReplayEvent)
	})

	api.router = r
	api.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return api
}

// Handler exposes the routes
func (a *DebugAPI) Handler() http.Handler {
	return a.router
}

// Start serves the API in the background
func (a *DebugAPI) Start() {
	go func() {
		log.Infof("Debug API listening on %s", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Debug API server error: %v", err)
		}
	}()
}

// Shutdown stops the server
func (a *DebugAPI) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

func (a *DebugAPI) handleCacheSnapshot(w http.ResponseWriter, r *http.Request) {
	respondWithData(w, a.cache.Snapshot())
}

func (a *DebugAPI) handleCacheLookup(w http.ResponseWriter, r *http.Request) {
	channelID, err := common.ParseID(chi.URLParam(r, "channelID"))
	if err != nil {
		respondWithError(w, err.Error(), http.StatusBadRequest)
		return
	}
	respondWithData(w, map[string]bool{"tracked": a.cache.Tracks(channelID)})
}

// handleReplayEvent runs an event envelope through the handlers as if it came from NATS
func (a *DebugAPI) handleReplayEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDebugEventSize))
	if err != nil {
		respondWithError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	envelope, event, err := infrastructure.DecodeEventEnvelope(body)
	if err != nil {
		respondWithError(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.WithFields(log.Fields{
		"eventType": envelope.EventType,
		"eventId":   envelope.EventID,
		"source":    "debug_replay",
	}).Info("Replaying event")

	if err := a.dispatcher.Dispatch(r.Context(), event); err != nil {
		respondWithError(w, fmt.Sprintf("Failed to handle event: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(DebugResponse{
		Success: true,
		Message: "Event handled",
		Data:    map[string]string{"event_id": envelope.EventID},
	})
}

func respondWithData(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(DebugResponse{
		Success: true,
		Data:    data,
	})
}

func respondWithError(w http.ResponseWriter, error string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(DebugResponse{
		Success: false,
		Error:   error,
	})
}
