// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package migration sequences and applies the global schema migrations
// under migrations/*.sql, comparing the installed version recorded in
// the `version` singleton table against the files' semver basenames and
// the running binary's build version. Grounded structurally on
// internal/database's plain-SQL-exec style (no ORM), generalized to a
// file-driven sequencer per spec.md §4.10.
package migration

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/mod/semver"
)

// zeroVersion is used when the `version` table does not yet exist.
const zeroVersion = "0.0.0"

// toSemver prefixes a bare "x.y.z" string with "v" so it parses under
// golang.org/x/mod/semver, which requires the leading v.
func toSemver(raw string) string {
	if strings.HasPrefix(raw, "v") {
		return raw
	}
	return "v" + raw
}

// Sequencer applies ordered migration files against the database pool.
type Sequencer struct {
	pool         *pgxpool.Pool
	files        fs.FS
	buildVersion string
	logger       hclog.Logger
}

// New constructs a Sequencer reading migration files from files and
// comparing against buildVersion (a bare "x.y.z" string).
func New(pool *pgxpool.Pool, files fs.FS, buildVersion string, logger hclog.Logger) *Sequencer {
	return &Sequencer{pool: pool, files: files, buildVersion: buildVersion, logger: logger.Named("migration")}
}

// InstalledVersion reads the installed schema version, defaulting to
// 0.0.0 if the `version` table does not yet exist.
func (s *Sequencer) InstalledVersion(ctx context.Context) (string, error) {
	var version string
	err := s.pool.QueryRow(ctx, `SELECT version FROM version`).Scan(&version)
	if err != nil {
		if strings.Contains(err.Error(), "does not exist") {
			return zeroVersion, nil
		}
		return "", fmt.Errorf("read installed version: %w", err)
	}
	return version, nil
}

// pendingFiles returns the migration files strictly greater than
// installed and at most buildVersion, sorted ascending.
func (s *Sequencer) pendingFiles(installed string) ([]string, error) {
	entries, err := fs.ReadDir(s.files, ".")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	var pending []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		basename := strings.TrimSuffix(e.Name(), ".sql")
		v := toSemver(basename)
		if !semver.IsValid(v) {
			continue
		}
		if semver.Compare(v, toSemver(installed)) > 0 && semver.Compare(v, toSemver(s.buildVersion)) <= 0 {
			pending = append(pending, e.Name())
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		vi := toSemver(strings.TrimSuffix(pending[i], ".sql"))
		vj := toSemver(strings.TrimSuffix(pending[j], ".sql"))
		return semver.Compare(vi, vj) < 0
	})
	return pending, nil
}

// Apply runs every pending migration file in order, updating the
// installed version after each. Each file is executed as a single
// multi-statement script.
func (s *Sequencer) Apply(ctx context.Context) error {
	installed, err := s.InstalledVersion(ctx)
	if err != nil {
		return err
	}

	pending, err := s.pendingFiles(installed)
	if err != nil {
		return err
	}

	for _, name := range pending {
		raw, err := fs.ReadFile(s.files, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		if _, err := s.pool.Exec(ctx, string(raw)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}

		version := strings.TrimSuffix(name, ".sql")
		if _, err := s.pool.Exec(ctx, `UPDATE version SET version = $1`, version); err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}

		s.logger.Info("applied migration", "version", version)
	}

	return nil
}

// CheckStartup enforces the startup invariant: installed version must
// equal the build version. Callers on the non-migrate path should treat
// a non-nil error as fatal.
func (s *Sequencer) CheckStartup(ctx context.Context) error {
	installed, err := s.InstalledVersion(ctx)
	if err != nil {
		return err
	}
	if toSemver(installed) != toSemver(s.buildVersion) {
		return fmt.Errorf("schema version mismatch: installed %s, build %s", installed, s.buildVersion)
	}
	return nil
}
