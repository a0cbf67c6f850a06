// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of go-customer-keeper and applies
// it with goose. Each supported database/sql driver has its own directory of
// migrations.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// dialects maps a database/sql driver name to the goose dialect and the
// embedded directory holding its migrations.
var dialects = map[string]struct {
	goose string
	dir   string
}{
	"sqlite3": {goose: "sqlite3", dir: "sqlite"},
	"pgx":     {goose: "postgres", dir: "postgres"},
}

// Migrate applies all pending migrations for driver to db.
// Progress is reported through log; a nil log discards it.
func Migrate(db *sql.DB, driver string, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	if log == nil {
		log = logger.Nop()
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&gooseLogger{log: log})

	if err := goose.SetDialect(dialect.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output into the application logger.
type gooseLogger struct {
	log *logger.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Msgf(format, v...)
}

// Fatalf logs at error level; Migrate reports the failure through its
// returned error instead of exiting the process.
func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error().Msgf(format, v...)
}
