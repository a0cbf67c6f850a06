// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/migrations"
	sq "github.com/Masterminds/squirrel"
)

// ErrorClassification is the result of [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified covers every error without a dedicated repository mapping.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates that a UNIQUE constraint rejected the write.
	UniqueViolation

	// ConnectionFailure indicates that the database could not be reached.
	ConnectionFailure
)

// ErrorClassificator maps driver-specific errors onto [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is the process-wide database handle shared by all repositories.
// It carries the driver name, the SQL dialect used to build queries and the
// driver-specific error classifier.
type DB struct {
	*sql.DB
	driver             string
	dialect            sqlDialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens and pings the database selected by cfg.Driver.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations for the driver of db.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver, db.logger)
}

// Driver returns the database/sql driver name db was opened with.
func (db *DB) Driver() string {
	return db.driver
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}

	return db.errorClassificator.Classify(err)
}

// wrapError tags err with sentinel, or with [ErrStoreUnavailable] when the
// driver classifies it as a [ConnectionFailure].
func (db *DB) wrapError(sentinel, err error) error {
	if db.classify(err) == ConnectionFailure {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return fmt.Errorf("%w: %w", sentinel, err)
}

// sqlDialect holds the per-driver differences in generated SQL.
type sqlDialect struct {
	builder sq.StatementBuilderType

	// caseInsensitiveLike switches substring filters to ILIKE, matching the
	// ASCII case-insensitive LIKE of SQLite.
	caseInsensitiveLike bool
}

var (
	sqliteDialect = sqlDialect{
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
	postgresDialect = sqlDialect{
		builder:             sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		caseInsensitiveLike: true,
	}
)

// contains returns a substring predicate on column.
func (d sqlDialect) contains(column, value string) sq.Sqlizer {
	pattern := "%" + value + "%"
	if d.caseInsensitiveLike {
		return sq.ILike{column: pattern}
	}

	return sq.Like{column: pattern}
}
