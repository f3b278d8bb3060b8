package events

import (
	"time"

	"github.com/shuldan/eventflow/pkg/contracts"
)

type Option func(*config)

type config struct {
	logger contracts.Logger
	clock  func() time.Time
}

func WithLogger(l contracts.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		if clock == nil {
			return
		}
		c.clock = clock
	}
}
