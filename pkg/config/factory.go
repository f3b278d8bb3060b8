package config

import (
	"github.com/shuldan/eventflow/pkg/contracts"
)

func NewMapConfig(values map[string]any) contracts.Config {
	if values == nil {
		values = map[string]any{}
	}
	return &MapConfig{values: values}
}

// New returns the configuration from the first loader that succeeds.
func New(loaders ...Loader) (contracts.Config, error) {
	var lastErr error
	for _, loader := range loaders {
		values, err := loader.Load()
		if err != nil {
			lastErr = err
			continue
		}
		return NewMapConfig(values), nil
	}
	return nil, ErrNoConfigSource.WithCause(lastErr)
}
