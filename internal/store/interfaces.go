// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-customer-keeper/models"
)

// UserRepository persists registered users.
type UserRepository interface {
	// CreateUser inserts user and returns it with the generated UserID.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByName returns the first user (lowest id) with the given name.
	FindUserByName(ctx context.Context, name string) (models.User, error)

	// FindUserByEmail returns the user with the given email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// CustomerRepository persists customer records.
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	FindCustomerByEmail(ctx context.Context, email string) (models.Customer, error)
	GetCustomerByID(ctx context.Context, id int64) (models.Customer, error)
	DeleteCustomerByID(ctx context.Context, id int64) error
	ListCustomers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error)
}
