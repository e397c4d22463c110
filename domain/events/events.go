package events

import "smanager/domain/entities"

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeScrimRegistrationDeny   EventType = "scrim_registration_deny"
	EventTypeTourneyRegistrationDeny EventType = "tourney_registration_deny"
	EventTypeScrimLog                EventType = "scrim_log"
	EventTypeTourneyLog              EventType = "tourney_log"
	EventTypeScrimReserveTimer       EventType = "scrim_reserve_timer_complete"
	EventTypeGuildChannelDelete      EventType = "guild_channel_delete"
	EventTypeScrimRegistrationDelete EventType = "scrim_registration_delete"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// RegistrationDenial carries what both denial events share
type RegistrationDenial struct {
	Message entities.RegistrationMessage `json:"message"`
	Reason  entities.RegDeny             `json:"reason"`
	Records []entities.DenyRecord        `json:"records,omitempty"`
}

// ScrimRegistrationDenyEvent is published when a scrim registration was rejected
type ScrimRegistrationDenyEvent struct {
	RegistrationDenial
	ScrimID int64 `json:"scrim_id"`
}

func (e ScrimRegistrationDenyEvent) Type() EventType {
	return EventTypeScrimRegistrationDeny
}

// TourneyRegistrationDenyEvent is published when a tourney registration was rejected
type TourneyRegistrationDenyEvent struct {
	RegistrationDenial
	TourneyID int64 `json:"tourney_id"`
}

func (e TourneyRegistrationDenyEvent) Type() EventType {
	return EventTypeTourneyRegistrationDeny
}

// ScrimLogEvent is published when scrim registration opens or closes
type ScrimLogEvent struct {
	ScrimID           int64                         `json:"scrim_id"`
	Kind              entities.EsportsLog           `json:"kind"`
	PermissionUpdated bool                          `json:"permission_updated"`
	Message           *entities.RegistrationMessage `json:"message,omitempty"`
}

func (e ScrimLogEvent) Type() EventType {
	return EventTypeScrimLog
}

// TourneyLogEvent is published when tourney registration closes or a team is accepted
type TourneyLogEvent struct {
	TourneyID         int64                         `json:"tourney_id"`
	Kind              entities.EsportsLog           `json:"kind"`
	PermissionUpdated bool                          `json:"permission_updated"`
	Message           *entities.RegistrationMessage `json:"message,omitempty"`
}

func (e TourneyLogEvent) Type() EventType {
	return EventTypeTourneyLog
}

// ScrimReserveTimerEvent is published by the timer service when a reservation lease runs out
type ScrimReserveTimerEvent struct {
	Timer entities.Timer `json:"timer"`
}

func (e ScrimReserveTimerEvent) Type() EventType {
	return EventTypeScrimReserveTimer
}

// GuildChannelDeleteEvent is raised from the gateway when a guild channel is removed
type GuildChannelDeleteEvent struct {
	GuildID   int64 `json:"guild_id"`
	ChannelID int64 `json:"channel_id"`
}

func (e GuildChannelDeleteEvent) Type() EventType {
	return EventTypeGuildChannelDelete
}

// ScrimRegistrationDeleteEvent is published when an accepted registration message was deleted
type ScrimRegistrationDeleteEvent struct {
	ScrimID int64                        `json:"scrim_id"`
	Message entities.RegistrationMessage `json:"message"`
	SlotID  int64                        `json:"slot_id"`
	SlotNum int                          `json:"slot_num"`
}

func (e ScrimRegistrationDeleteEvent) Type() EventType {
	return EventTypeScrimRegistrationDelete
}

// New returns an empty event for eventType, ready to be decoded into
func New(eventType EventType) (Event, bool) {
	switch eventType {
	case EventTypeScrimRegistrationDeny:
		return &ScrimRegistrationDenyEvent{}, true
	case EventTypeTourneyRegistrationDeny:
		return &TourneyRegistrationDenyEvent{}, true
	case EventTypeScrimLog:
		return &ScrimLogEvent{}, true
	case EventTypeTourneyLog:
		return &TourneyLogEvent{}, true
	case EventTypeScrimReserveTimer:
		return &ScrimReserveTimerEvent{}, true
	case EventTypeGuildChannelDelete:
		return &GuildChannelDeleteEvent{}, true
	case EventTypeScrimRegistrationDelete:
		return &ScrimRegistrationDeleteEvent{}, true
	}
	return nil, false
}

// All lists every event type handled by the bot
func All() []EventType {
	return []EventType{
		EventTypeScrimRegistrationDeny,
		EventTypeTourneyRegistrationDeny,
		EventTypeScrimLog,
		EventTypeTourneyLog,
		EventTypeScrimReserveTimer,
		EventTypeGuildChannelDelete,
		EventTypeScrimRegistrationDelete,
	}
}
