package entities

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timer is a delayed callback record produced by the external timer service
type Timer struct {
	ID      int64           `json:"id"`
	Event   string          `json:"event"`
	Expires time.Time       `json:"expires"`
	Created time.Time       `json:"created"`
	Extra   json.RawMessage `json:"extra"`
}

// ReserveTimerPayload is the Extra payload of a scrim_reserve timer
type ReserveTimerPayload struct {
	ScrimID  int64  `json:"scrim_id"`
	TeamName string `json:"team_name"`
	UserID   int64  `json:"user_id"`
}

// ReservePayload decodes the timer's payload as a scrim reservation
func (t *Timer) ReservePayload() (ReserveTimerPayload, error) {
	var payload ReserveTimerPayload
	if len(t.Extra) == 0 {
		return payload, fmt.Errorf("timer %d has no payload", t.ID)
	}
	if err := json.Unmarshal(t.Extra, &payload); err != nil {
		return payload, fmt.Errorf("failed to decode reserve payload of timer %d: %w", t.ID, err)
	}
	if payload.ScrimID == 0 || payload.UserID == 0 {
		return payload, fmt.Errorf("timer %d payload is missing scrim_id or user_id", t.ID)
	}
	return payload, nil
}
