// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/store"
	"github.com/MKhiriev/go-customer-keeper/models"
)

// customerService implements CustomerService on top of a CustomerRepository.
// Input is expected to be validated by the wrapping CustomerValidationService.
type customerService struct {
	customerRepository store.CustomerRepository
	logger             *logger.Logger
}

func NewCustomerService(customerRepository store.CustomerRepository, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		logger:             logger,
	}
}

func (s *customerService) ListCustomers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error) {
	customers, err := s.customerRepository.ListCustomers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing customers: %w", err)
	}

	return customers, nil
}

// CreateCustomer stores a new customer unless one with the same email exists.
func (s *customerService) CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (models.Customer, error) {
	log := logger.FromContext(ctx)

	_, err := s.customerRepository.FindCustomerByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Debug().Str("email", req.Email).Msg("customer with this email already exists")
		return models.Customer{}, ErrCustomerAlreadyExists
	case !errors.Is(err, store.ErrCustomerNotFound):
		return models.Customer{}, fmt.Errorf("customer search by email failed: %w", err)
	}

	customer, err := s.customerRepository.CreateCustomer(ctx, models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	})
	if err != nil {
		if errors.Is(err, store.ErrCustomerExists) {
			return models.Customer{}, ErrCustomerAlreadyExists
		}
		return models.Customer{}, fmt.Errorf("error creating customer: %w", err)
	}

	log.Info().Int64("customer_id", customer.ID).Msg("customer created")
	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (models.Customer, error) {
	customer, err := s.customerRepository.GetCustomerByID(ctx, id)
	if err != nil {
		return models.Customer{}, fmt.Errorf("error getting customer %d: %w", id, err)
	}

	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.customerRepository.DeleteCustomerByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting customer %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().Int64("customer_id", id).Msg("customer deleted")
	return nil
}
