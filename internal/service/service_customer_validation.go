// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-customer-keeper/internal/validators"
	"github.com/MKhiriev/go-customer-keeper/models"
)

// CustomerValidationService rejects invalid input before it reaches the
// wrapped CustomerService.
type CustomerValidationService struct {
	inner     CustomerService
	validator validators.Validator
}

func NewCustomerValidationService(validator validators.Validator) CustomerServiceWrapper {
	return &CustomerValidationService{
		validator: validator,
	}
}

// ListCustomers upper-cases filter.Order and checks limit, order and
// order_by against their allowed values.
func (v *CustomerValidationService) ListCustomers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error) {
	filter.Order = strings.ToUpper(filter.Order)

	if err := v.validator.Validate(ctx, filter, "Limit", "Order", "OrderBy"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidListParams, err)
	}

	return v.inner.ListCustomers(ctx, filter)
}

func (v *CustomerValidationService) CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (models.Customer, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		if errors.Is(err, validators.ErrRequiredFieldMissing) {
			return models.Customer{}, ErrAllFieldsRequired
		}
		return models.Customer{}, fmt.Errorf("error during customer validation before saving: %w", err)
	}

	return v.inner.CreateCustomer(ctx, req)
}

func (v *CustomerValidationService) GetCustomer(ctx context.Context, id int64) (models.Customer, error) {
	if id <= 0 {
		return models.Customer{}, ErrInvalidCustomerID
	}

	return v.inner.GetCustomer(ctx, id)
}

func (v *CustomerValidationService) DeleteCustomer(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidCustomerID
	}

	return v.inner.DeleteCustomer(ctx, id)
}

func (v *CustomerValidationService) Wrap(wrapped CustomerService) CustomerService {
	v.inner = wrapped
	return v
}
