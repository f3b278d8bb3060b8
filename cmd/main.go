package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shuldan/eventflow/pkg/config"
	"github.com/shuldan/eventflow/pkg/contracts"
	"github.com/shuldan/eventflow/pkg/events"
	"github.com/shuldan/eventflow/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := loadConfig()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.GetString("log.level", "info"))),
		logger.WithColor(),
	)

	bus := events.New(events.WithLogger(log))

	bus.Listen("patient:admitted")(func(_ context.Context, e contracts.Event) error {
		log.Info("medical record created", "patient_id", e.Data()["patient_id"])
		return nil
	})

	notifyWard := func(_ context.Context, e contracts.Event) error {
		log.Info("ward notified", "event_id", e.ID(), "patient_id", e.Data()["patient_id"])
		return nil
	}
	if err := bus.AddListener("patient:admitted", notifyWard); err != nil {
		return err
	}

	log.Info("listeners registered", "counts", fmt.Sprintf("%v", bus.Listeners()))

	ctx := context.Background()
	if err := bus.Fire(ctx, "patient:admitted", map[string]any{"patient_id": "1"}); err != nil {
		return err
	}

	if err := bus.RemoveListener("patient:admitted", notifyWard); err != nil {
		return err
	}

	return bus.Fire(ctx, "patient:admitted", map[string]any{"patient_id": "2"})
}

func loadConfig() contracts.Config {
	cfg, err := config.New(config.NewYamlLoader("eventflow.yaml", "config/eventflow.yaml"))
	if err != nil {
		return config.NewMapConfig(nil)
	}
	return cfg
}
