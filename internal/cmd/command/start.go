// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package command holds the CLI's subcommands, each a plain
// mitchellh/cli.Command, in the shape jrepp-hermes's
// internal/cmd/commands/serve wires one from already-constructed
// dependencies rather than hermes's base.Command abstraction.
package command

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/doculens/doculens/internal/coordinator"
	"github.com/doculens/doculens/internal/httpapi"
	"github.com/doculens/doculens/internal/migration"
	"github.com/doculens/doculens/internal/service"
	"github.com/doculens/doculens/internal/validator"
)

// StartCommand launches the three long-lived tasks: gRPC coordinator,
// HTTP interface, worker validator loop. Grounded on
// cmd/hive-server/main.go's waitForShutdown pattern.
type StartCommand struct {
	Svc             *service.Service
	Sequencer       *migration.Sequencer
	CoordinatorAddr string
	InterfaceAddr   string
	AllowedOrigins  []string
	BuildVersion    string
	Logger          hclog.Logger
}

func (c *StartCommand) Help() string {
	return "Usage: doculens start\n\n  Launches the gRPC coordinator, HTTP interface, and worker validator loop."
}

func (c *StartCommand) Synopsis() string {
	return "Start the coordinator, interface, and validator loop"
}

func (c *StartCommand) Run(args []string) int {
	logger := c.Logger.Named("start")
	ctx := context.Background()

	if err := c.Sequencer.CheckStartup(ctx); err != nil {
		logger.Error("schema version mismatch at startup", "error", err)
		return 1
	}

	coordHandler := coordinator.New(c.Svc, c.BuildVersion, logger)
	grpcServer, err := coordinator.Serve(c.CoordinatorAddr, coordHandler)
	if err != nil {
		logger.Error("failed to start coordinator", "error", err)
		return 1
	}

	httpServer := &http.Server{
		Addr:    c.InterfaceAddr,
		Handler: httpapi.New(httpapi.Config{AllowedOrigins: c.AllowedOrigins}, c.Svc, c.BuildVersion, logger),
	}
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("interface server stopped", "error", err)
		}
	}()

	validatorCtx, cancelValidator := context.WithCancel(ctx)
	loop := validator.New(c.Svc, logger)
	go loop.Run(validatorCtx)

	logger.Info("doculens started", "coordinator_addr", c.CoordinatorAddr, "interface_addr", c.InterfaceAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	cancelValidator()
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("interface server shutdown error", "error", err)
	}

	return 0
}

