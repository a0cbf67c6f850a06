// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/store"
	"github.com/MKhiriev/go-customer-keeper/internal/validators"
)

type Services struct {
	AuthService     AuthService
	CustomerService CustomerService
	AppInfoService  AppInfoService
}

// NewServices builds the service layer over storages. The customer service
// is wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg, storages, logger)
	if err != nil {
		return nil, err
	}

	customerService := NewCustomerValidationService(validator).
		Wrap(NewCustomerService(storages.CustomerRepository, logger))

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, validator, cfg, logger),
		CustomerService: customerService,
		AppInfoService:  appInfoService,
	}, nil
}
