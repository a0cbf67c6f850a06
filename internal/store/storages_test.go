// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "company.db"),
	}}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestStorages_PingAfterClose(t *testing.T) {
	s := newSQLiteStorages(t)
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Ping(context.Background()), ErrStoreUnavailable)
}

func TestStorages_SQLite_Users(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))
	assert.Equal(t, config.DriverSQLite, s.DB.Driver())

	first, err := s.UserRepository.CreateUser(ctx, models.User{Name: "john", Email: "john@example.com", Password: "h1", Role: "admin"})
	require.NoError(t, err)
	assert.Positive(t, first.UserID)

	// same name, different email: allowed
	_, err = s.UserRepository.CreateUser(ctx, models.User{Name: "john", Email: "john2@example.com", Password: "h2", Role: "user"})
	require.NoError(t, err)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Name: "other", Email: "john@example.com", Password: "h3", Role: "user"})
	assert.ErrorIs(t, err, ErrUserExists)

	byName, err := s.UserRepository.FindUserByName(ctx, "john")
	require.NoError(t, err)
	assert.Equal(t, first.UserID, byName.UserID)
	assert.Equal(t, "h1", byName.Password)

	byEmail, err := s.UserRepository.FindUserByEmail(ctx, "john2@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user", byEmail.Role)

	_, err = s.UserRepository.FindUserByName(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStorages_SQLite_Customers(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	repo := s.CustomerRepository

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	companies := []string{"Acme", "Globex", "Initech"}
	for i := range 12 {
		_, err := repo.CreateCustomer(ctx, models.Customer{
			Name:      fmt.Sprintf("customer-%02d", i),
			Email:     fmt.Sprintf("c%02d@example.com", i),
			Phone:     fmt.Sprintf("555-%04d", i),
			Company:   companies[i%len(companies)],
			CreatedAt: base.Add(time.Duration(11-i) * time.Minute),
		})
		require.NoError(t, err)
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := repo.CreateCustomer(ctx, models.Customer{Name: "x", Email: "c00@example.com", Phone: "1", Company: "Acme"})
		assert.ErrorIs(t, err, ErrCustomerExists)
	})

	t.Run("default page ordered by created_at", func(t *testing.T) {
		page, err := repo.ListCustomers(ctx, models.NewCustomerFilter())
		require.NoError(t, err)
		require.Len(t, page, 10)
		for i := 1; i < len(page); i++ {
			assert.False(t, page[i].CreatedAt.Before(page[i-1].CreatedAt), "page must be ascending by created_at")
		}
		assert.Equal(t, "customer-11", page[0].Name)
	})

	t.Run("offset past the end", func(t *testing.T) {
		filter := models.NewCustomerFilter()
		filter.Offset = 100

		page, err := repo.ListCustomers(ctx, filter)
		require.NoError(t, err)
		assert.NotNil(t, page)
		assert.Empty(t, page)
	})

	t.Run("company substring filter is case-insensitive", func(t *testing.T) {
		filter := models.NewCustomerFilter()
		filter.Company = "acme"
		filter.Limit = 100

		page, err := repo.ListCustomers(ctx, filter)
		require.NoError(t, err)
		require.Len(t, page, 4)
		for _, c := range page {
			assert.Equal(t, "Acme", c.Company)
		}
	})

	t.Run("filters are OR-combined", func(t *testing.T) {
		filter := models.NewCustomerFilter()
		filter.Company = "Globex"
		filter.Name = "customer-00"
		filter.Limit = 100

		page, err := repo.ListCustomers(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, page, 5) // 4 Globex + customer-00 (Acme)
	})

	t.Run("get, delete, get", func(t *testing.T) {
		found, err := repo.FindCustomerByEmail(ctx, "c03@example.com")
		require.NoError(t, err)

		got, err := repo.GetCustomerByID(ctx, found.ID)
		require.NoError(t, err)
		assert.Equal(t, "customer-03", got.Name)
		assert.True(t, got.CreatedAt.Equal(base.Add(8*time.Minute)))

		require.NoError(t, repo.DeleteCustomerByID(ctx, found.ID))

		_, err = repo.GetCustomerByID(ctx, found.ID)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
		assert.ErrorIs(t, repo.DeleteCustomerByID(ctx, found.ID), ErrCustomerNotFound)
	})
}
