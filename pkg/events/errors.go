package events

import "github.com/shuldan/eventflow/pkg/errors"

var newEventCode = errors.WithPrefix("EVENTS")

var (
	ErrEmptyEventType   = newEventCode().New("event type must not be empty")
	ErrNilListener      = newEventCode().New("listener must not be nil")
	ErrUnknownEventType = newEventCode().New("no listeners registered for event type {{.event_type}}")
	ErrListenerNotFound = newEventCode().New("listener is not registered for event type {{.event_type}}")
)
