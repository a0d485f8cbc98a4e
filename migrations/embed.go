// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package migrations embeds the ordered .sql migration files so the
// binary carries its own schema history with no external file
// dependency at deploy time.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
