// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/doculens/doculens/internal/cmd"
	"github.com/doculens/doculens/internal/cmd/command"
	"github.com/doculens/doculens/internal/config"
	"github.com/doculens/doculens/internal/migration"
	"github.com/doculens/doculens/internal/objectstore"
	"github.com/doculens/doculens/internal/service"
	"github.com/doculens/doculens/internal/taskqueue"
	"github.com/doculens/doculens/migrations"
)

// buildVersion is compared against the installed schema version by the
// migration sequencer at startup, per spec.md §4.10.
const buildVersion = "1.0.0"

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "doculens",
		Level: hclog.Info,
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := service.NewPool(ctx, cfg.DatabaseURL, cfg.PoolSize)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store, err := objectstore.New(ctx, cfg.BucketName, false, logger)
	if err != nil {
		logger.Error("failed to initialize object store", "error", err)
		os.Exit(1)
	}

	queue, err := taskqueue.New(cfg.QueueURL, logger)
	if err != nil {
		logger.Error("failed to connect to task queue", "error", err)
		os.Exit(1)
	}
	defer queue.Close()

	openAIKey := os.Getenv("OPENAI_API_KEY")
	svc := service.New(pool, store, queue, cfg.SecretKey, openAIKey, logger)

	sequencer := migration.New(pool, migrations.Files, buildVersion, logger)

	startCmd := &command.StartCommand{
		Svc:             svc,
		Sequencer:       sequencer,
		CoordinatorAddr: fmt.Sprintf(":%d", cfg.CoordinatorPort),
		InterfaceAddr:   fmt.Sprintf(":%d", cfg.InterfacePort),
		AllowedOrigins:  []string{"*"},
		BuildVersion:    buildVersion,
		Logger:          logger,
	}
	migrateCmd := &command.MigrateCommand{
		Sequencer: sequencer,
		Logger:    logger,
	}

	os.Exit(cmd.Main("doculens", os.Args, buildVersion, startCmd, migrateCmd))
}
