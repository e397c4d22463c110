package entities

import "time"

// ReservedSlot holds a slot for a team, optionally until Expires
type ReservedSlot struct {
	ID       int64      `db:"id"`
	ScrimID  int64      `db:"scrim_id"`
	Num      int        `db:"num"`
	UserID   *int64     `db:"user_id"`
	TeamName string     `db:"team_name"`
	Expires  *time.Time `db:"expires"`
}

// ExpiresAt reports whether the reservation expires exactly at t.
// Postgres stores microseconds, so both sides are truncated before comparing.
func (r *ReservedSlot) ExpiresAt(t time.Time) bool {
	if r.Expires == nil {
		return false
	}
	return r.Expires.Truncate(time.Microsecond).Equal(t.Truncate(time.Microsecond))
}

// AssignedSlot binds a registered team to a slot number permanently
type AssignedSlot struct {
	ID        int64     `db:"id"`
	ScrimID   int64     `db:"scrim_id"`
	Num       int       `db:"num"`
	UserID    int64     `db:"user_id"`
	TeamName  string    `db:"team_name"`
	MessageID *int64    `db:"message_id"`
	JumpURL   *string   `db:"jump_url"`
	CreatedAt time.Time `db:"created_at"`
}
