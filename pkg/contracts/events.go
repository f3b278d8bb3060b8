package contracts

import (
	"context"
	"time"
)

type Event interface {
	ID() string
	Type() string
	Data() map[string]any
	Timestamp() time.Time
	AsMap() map[string]any
}

type EventListener func(ctx context.Context, event Event) error

type EventBus interface {
	AddListener(eventType string, listener EventListener) error
	Listen(eventType string) func(EventListener) EventListener
	RemoveListener(eventType string, listener EventListener) error
	Listeners() map[string]int
	Fire(ctx context.Context, eventType string, data map[string]any) error
}
