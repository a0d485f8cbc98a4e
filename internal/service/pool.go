// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool opens the shared connection pool, sized by DL_POOL_SIZE, that
// backs every per-namespace operation. Grounded on
// fbrzx-airplane-chat/internal/vectorstore/postgres.go's
// ParseConfig/NewWithConfig pattern.
func NewPool(ctx context.Context, databaseURL string, poolSize int) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if poolSize > 0 {
		cfg.MaxConns = int32(poolSize)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}
