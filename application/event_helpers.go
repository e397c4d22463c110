package application

import (
	"fmt"
	"reflect"

	"smanager/domain/events"
)

// AssertEventType safely asserts an event to a specific type with detailed error messages
func AssertEventType[T events.Event](event interface{}, expectedTypeName string) (T, error) {
	var zero T

	if e, ok := event.(T); ok {
		if v := reflect.ValueOf(e); v.Kind() == reflect.Ptr && v.IsNil() {
			return zero, fmt.Errorf("event type assertion failed: %s is nil", expectedTypeName)
		}
		return e, nil
	}

	actualType := fmt.Sprintf("%T", event)

	var eventTypeStr string
	if e, ok := event.(events.Event); ok {
		eventTypeStr = string(e.Type())
	}

	errMsg := fmt.Sprintf("event type assertion failed: expected %s, got %s", expectedTypeName, actualType)
	if eventTypeStr != "" {
		errMsg += fmt.Sprintf(" (event.Type()=%s)", eventTypeStr)
	}

	// Pointer details help spot nil events
	if event != nil && reflect.ValueOf(event).Kind() == reflect.Ptr {
		if reflect.ValueOf(event).IsNil() {
			errMsg += " (event is nil)"
		} else {
			errMsg += fmt.Sprintf(" (pointer to %s)", reflect.TypeOf(event).Elem().String())
		}
	}

	return zero, fmt.Errorf("%s", errMsg)
}
