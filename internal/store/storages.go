// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
)

// Storages bundles the database handle with the repositories built on it.
type Storages struct {
	DB                 *DB
	UserRepository     UserRepository
	CustomerRepository CustomerRepository
}

// NewStorages connects to the configured database, applies migrations and
// constructs the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	log.Info().Str("driver", db.Driver()).Msg("storage is ready")

	return &Storages{
		DB:                 db,
		UserRepository:     NewUserRepository(db, log),
		CustomerRepository: NewCustomerRepository(db, log),
	}, nil
}

// Ping verifies that the database is reachable. Failures wrap
// [ErrStoreUnavailable].
func (s *Storages) Ping(ctx context.Context) error {
	if err := s.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	return s.DB.Close()
}
