// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package command

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/doculens/doculens/internal/migration"
)

// MigrateCommand runs the schema migration sequencer to completion.
type MigrateCommand struct {
	Sequencer *migration.Sequencer
	Logger    hclog.Logger
}

func (c *MigrateCommand) Help() string {
	return "Usage: doculens migrate\n\n  Applies any pending schema migrations."
}

func (c *MigrateCommand) Synopsis() string {
	return "Apply pending schema migrations"
}

func (c *MigrateCommand) Run(args []string) int {
	logger := c.Logger.Named("migrate")
	if err := c.Sequencer.Apply(context.Background()); err != nil {
		logger.Error("migration failed", "error", err)
		return 1
	}
	logger.Info("migrations applied")
	return 0
}
