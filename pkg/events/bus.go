package events

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/shuldan/eventflow/pkg/contracts"
)

type listenerEntry struct {
	fn contracts.EventListener
	id uintptr
}

type bus struct {
	mu        sync.RWMutex
	listeners map[string][]listenerEntry
	logger    contracts.Logger
	clock     func() time.Time
}

var _ contracts.EventBus = (*bus)(nil)

func (b *bus) AddListener(eventType string, listener contracts.EventListener) error {
	if eventType == "" {
		return ErrEmptyEventType
	}
	if listener == nil {
		return ErrNilListener.WithDetail("event_type", eventType)
	}

	entry := listenerEntry{fn: listener, id: listenerID(listener)}

	b.mu.Lock()
	b.listeners[eventType] = append(b.listeners[eventType], entry)
	count := len(b.listeners[eventType])
	b.mu.Unlock()

	if b.logger != nil {
		b.logger.Trace("listener added", "event_type", eventType, "listeners", count)
	}
	return nil
}

// Listen returns a registration decorator: it registers the listener for
// eventType and hands it back unchanged. Invalid registrations panic since
// the decorator form has no error channel.
func (b *bus) Listen(eventType string) func(contracts.EventListener) contracts.EventListener {
	return func(listener contracts.EventListener) contracts.EventListener {
		if err := b.AddListener(eventType, listener); err != nil {
			panic(err)
		}
		return listener
	}
}

func (b *bus) RemoveListener(eventType string, listener contracts.EventListener) error {
	if eventType == "" {
		return ErrEmptyEventType
	}
	if listener == nil {
		return ErrNilListener.WithDetail("event_type", eventType)
	}

	id := listenerID(listener)

	b.mu.Lock()
	defer b.mu.Unlock()

	entries, ok := b.listeners[eventType]
	if !ok {
		return ErrUnknownEventType.WithDetail("event_type", eventType)
	}

	for i := range entries {
		if entries[i].id != id {
			continue
		}

		entries = append(entries[:i], entries[i+1:]...)
		if len(entries) == 0 {
			// prune so Listeners never reports a zero count and a later
			// Fire on this type fails the same way as a never-seen type
			delete(b.listeners, eventType)
		} else {
			b.listeners[eventType] = entries
		}

		if b.logger != nil {
			b.logger.Trace("listener removed", "event_type", eventType, "listeners", len(entries))
		}
		return nil
	}

	return ErrListenerNotFound.WithDetail("event_type", eventType)
}

func (b *bus) Listeners() map[string]int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	counts := make(map[string]int, len(b.listeners))
	for eventType, entries := range b.listeners {
		counts[eventType] = len(entries)
	}
	return counts
}

func (b *bus) Fire(ctx context.Context, eventType string, data map[string]any) error {
	if eventType == "" {
		return ErrEmptyEventType
	}

	b.mu.RLock()
	entries := b.listeners[eventType]
	snapshot := make([]listenerEntry, len(entries))
	copy(snapshot, entries)
	b.mu.RUnlock()

	if len(snapshot) == 0 {
		return ErrUnknownEventType.WithDetail("event_type", eventType)
	}

	evt := newEvent(eventType, data, b.clock())

	if b.logger != nil {
		b.logger.Debug("firing event",
			"event_type", eventType, "event_id", evt.ID(), "listeners", len(snapshot))
	}

	// dispatch runs against the snapshot: listeners registered or removed
	// by a listener take effect on the next Fire, not this one
	for _, entry := range snapshot {
		if err := entry.fn(ctx, evt); err != nil {
			return err
		}
	}
	return nil
}

// listenerID is the removal identity of a listener. Closures created from
// the same function literal share a code pointer and are therefore the
// same listener for removal purposes.
func listenerID(listener contracts.EventListener) uintptr {
	return reflect.ValueOf(listener).Pointer()
}
