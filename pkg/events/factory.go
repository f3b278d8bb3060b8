package events

import (
	"time"

	"github.com/shuldan/eventflow/pkg/contracts"
)

func New(opts ...Option) contracts.EventBus {
	cfg := &config{
		clock: func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return &bus{
		listeners: make(map[string][]listenerEntry),
		logger:    cfg.logger,
		clock:     cfg.clock,
	}
}
