// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package validator runs the worker-liveness loop: every 10 s it probes
// every registered worker and evicts any that fail to respond.
// Structurally grounded on internal/drone/heartbeat/monitor.go's
// ticker-driven monitor loop, but without that monitor's
// consecutive-failure threshold or OS notification side effect — here
// any single transport error evicts the worker immediately, per
// spec.md §4.9.
package validator

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/doculens/doculens/internal/model"
)

const (
	probeInterval = 10 * time.Second
	probeTimeout  = 3 * time.Second
)

// registry is the subset of *service.Service the loop depends on. An
// interface keeps this package free of an import cycle with service.
type registry interface {
	Workers() []model.Worker
	RemoveWorkers(ids []uuid.UUID)
}

// Loop periodically probes every worker and evicts unreachable ones.
type Loop struct {
	reg    registry
	client *http.Client
	logger hclog.Logger
}

// New constructs a validator Loop.
func New(reg registry, logger hclog.Logger) *Loop {
	return &Loop{
		reg:    reg,
		client: &http.Client{Timeout: probeTimeout},
		logger: logger.Named("validator"),
	}
}

// Run blocks, probing on every tick, until ctx is cancelled. It never
// terminates on its own and never propagates probe errors: it logs and
// evicts.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.validateOnce(ctx)
		}
	}
}

func (l *Loop) validateOnce(ctx context.Context) {
	workers := l.reg.Workers()
	var unreachable []uuid.UUID

	for _, w := range workers {
		if err := l.probe(ctx, w); err != nil {
			l.logger.Warn("worker failed liveness probe", "worker_id", w.ID, "address", w.Address, "error", err)
			unreachable = append(unreachable, w.ID)
		}
	}

	if len(unreachable) > 0 {
		l.reg.RemoveWorkers(unreachable)
		l.logger.Info("evicted unreachable workers", "count", len(unreachable))
	}
}

func (l *Loop) probe(ctx context.Context, w model.Worker) error {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	url := fmt.Sprintf("http://%s/", w.Address)
	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return nil
}
