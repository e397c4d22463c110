package infrastructure

import (
	"fmt"

	"smanager/domain/events"
)

// EventSubjectMapper handles mapping between domain events and NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

var subjectsByEventType = map[events.EventType]string{
	events.EventTypeScrimRegistrationDeny:   "esports.scrim.registration_denied",
	events.EventTypeTourneyRegistrationDeny: "esports.tourney.registration_denied",
	events.EventTypeScrimLog:                "esports.scrim.log",
	events.EventTypeTourneyLog:              "esports.tourney.log",
	events.EventTypeScrimReserveTimer:       "esports.timers.scrim_reserve",
	events.EventTypeScrimRegistrationDelete: "esports.scrim.registration_deleted",
}

// MapEventTypeToSubject returns the NATS subject an event type is published on.
// Gateway-only events have no subject.
func (m *EventSubjectMapper) MapEventTypeToSubject(eventType events.EventType) (string, bool) {
	subject, ok := subjectsByEventType[eventType]
	return subject, ok
}

// MapSubjectToEventType converts a NATS subject back to an event type
func (m *EventSubjectMapper) MapSubjectToEventType(subject string) (events.EventType, error) {
	for eventType, s := range subjectsByEventType {
		if s == subject {
			return eventType, nil
		}
	}
	return "", fmt.Errorf("no event type for subject %s", subject)
}

// GetAllSubjects returns every subject the bot consumes, in event type order
func (m *EventSubjectMapper) GetAllSubjects() []string {
	subjects := make([]string, 0, len(subjectsByEventType))
	for _, eventType := range events.All() {
		if subject, ok := subjectsByEventType[eventType]; ok {
			subjects = append(subjects, subject)
		}
	}
	return subjects
}
