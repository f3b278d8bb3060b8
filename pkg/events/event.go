package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shuldan/eventflow/pkg/contracts"
)

type event struct {
	id        string
	eventType string
	data      map[string]any
	timestamp time.Time
}

var _ contracts.Event = (*event)(nil)

// NewEvent builds a standalone event, mainly useful for tests and for
// calling listeners directly. Fire builds its own events.
func NewEvent(eventType string, data map[string]any) contracts.Event {
	return newEvent(eventType, data, time.Now().UTC())
}

func newEvent(eventType string, data map[string]any, timestamp time.Time) *event {
	if data == nil {
		data = map[string]any{}
	}
	return &event{
		id:        uuid.NewString(),
		eventType: eventType,
		data:      data,
		timestamp: timestamp,
	}
}

func (e *event) ID() string {
	return e.id
}

func (e *event) Type() string {
	return e.eventType
}

func (e *event) Data() map[string]any {
	return e.data
}

func (e *event) Timestamp() time.Time {
	return e.timestamp
}

func (e *event) AsMap() map[string]any {
	return map[string]any{
		"id":         e.id,
		"event_type": e.eventType,
		"data":       e.data,
		"timestamp":  e.timestamp,
	}
}

func (e *event) String() string {
	return fmt.Sprintf("<Event id=%s, event_type=%s, data=%v, timestamp=%s>",
		e.id, e.eventType, e.data, e.timestamp.Format(time.RFC3339Nano))
}
