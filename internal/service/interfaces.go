// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-customer-keeper/models"
)

// AuthService registers users, checks their credentials and manages the
// bearer tokens issued to them.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// CustomerService manages customer records.
type CustomerService interface {
	ListCustomers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error)
	CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (models.Customer, error)
	GetCustomer(ctx context.Context, id int64) (models.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

// CustomerServiceWrapper defines middleware composition for CustomerService.
// Implementations wrap an existing CustomerService to add behavior such as
// logging or validating.
type CustomerServiceWrapper interface {
	Wrap(CustomerService) CustomerService // returns a decorated CustomerService applying additional behavior
}

// AppInfoService reports build and runtime information about the application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	CheckHealth(ctx context.Context) error
}
