// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/models"
)

// customerRepository is the database/sql implementation of
// [CustomerRepository] over the "customers" table.
type customerRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCustomer inserts customer and returns it with the generated ID.
// CreatedAt is set to the current UTC time when zero.
func (r *customerRepository) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildCreateCustomerQuery(r.db.dialect, customer)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("error building query")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&customer.ID); err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Debug().Str("func", "*customerRepository.CreateCustomer").Msg("customer email already taken")
			return models.Customer{}, ErrCustomerExists
		}

		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("error inserting customer")
		return models.Customer{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return customer, nil
}

func (r *customerRepository) FindCustomerByEmail(ctx context.Context, email string) (models.Customer, error) {
	return r.getCustomer(ctx, "email", email)
}

func (r *customerRepository) GetCustomerByID(ctx context.Context, id int64) (models.Customer, error) {
	return r.getCustomer(ctx, "id", id)
}

func (r *customerRepository) getCustomer(ctx context.Context, column string, value any) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCustomerQuery(r.db.dialect, column, value)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.getCustomer").Msg("error building query")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Customer{}, ErrCustomerNotFound
	case err != nil:
		log.Err(err).Str("func", "*customerRepository.getCustomer").Str("by", column).Msg("error getting customer")
		return models.Customer{}, r.db.wrapError(ErrScanningRow, err)
	}

	return customer, nil
}

// DeleteCustomerByID removes the customer with id.
// Zero affected rows → [ErrCustomerNotFound].
func (r *customerRepository) DeleteCustomerByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCustomerByIDQuery(r.db.dialect, id)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.DeleteCustomerByID").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.DeleteCustomerByID").Msg("error deleting customer")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.DeleteCustomerByID").Msg("error reading affected rows")
		return r.db.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// ListCustomers returns one page of customers matching filter.
// The result is never nil.
func (r *customerRepository) ListCustomers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCustomersQuery(r.db.dialect, filter)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.ListCustomers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.ListCustomers").Msg("error listing customers")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0, min(filter.Limit, models.MaxCustomersLimit))
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			log.Err(err).Str("func", "*customerRepository.ListCustomers").Msg("error scanning customer")
			return nil, r.db.wrapError(ErrScanningRows, err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*customerRepository.ListCustomers").Msg("error iterating customers")
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return customers, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCustomer(s scanner) (models.Customer, error) {
	var c models.Customer
	err := s.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.CreatedAt)
	return c, err
}
