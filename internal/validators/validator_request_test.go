// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-customer-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidator_Validate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		value   any
		fields  []string
		wantErr error
	}{
		{
			name:  "complete register request",
			value: models.RegisterRequest{Name: "alice", Email: "a@x.io", Password: "password1", Role: "admin"},
		},
		{
			name:    "register request without role",
			value:   models.RegisterRequest{Name: "alice", Email: "a@x.io", Password: "password1"},
			wantErr: ErrRequiredFieldMissing,
		},
		{
			name:  "complete customer request by pointer",
			value: &models.CreateCustomerRequest{Name: "Acme", Phone: "1", Email: "c@acme.io", Company: "Acme"},
		},
		{
			name:    "customer request without phone",
			value:   models.CreateCustomerRequest{Name: "Acme", Email: "c@acme.io", Company: "Acme"},
			wantErr: ErrRequiredFieldMissing,
		},
		{
			name:  "default filter",
			value: models.NewCustomerFilter(),
		},
		{
			name: "filter limit above max",
			value: models.CustomerFilter{
				Limit: models.MaxCustomersLimit + 1, Order: "ASC", OrderBy: "id",
			},
			wantErr: ErrValueTooLong,
		},
		{
			name: "filter with lower case order",
			value: models.CustomerFilter{
				Limit: 10, Order: "asc", OrderBy: "id",
			},
			wantErr: ErrValueNotAllowed,
		},
		{
			name: "filter with unknown column",
			value: models.CustomerFilter{
				Limit: 10, Order: "DESC", OrderBy: "password",
			},
			wantErr: ErrValueNotAllowed,
		},
		{
			name: "partial validation ignores other fields",
			value: models.CustomerFilter{
				Limit: 10, Order: "bogus", OrderBy: "id",
			},
			fields: []string{"Limit", "OrderBy"},
		},
		{
			name:    "non struct value",
			value:   "just a string",
			wantErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.value, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_Validate_JoinsFailures(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.CreateCustomerRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequiredFieldMissing)
	for _, field := range []string{"name", "phone", "email", "company"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestRequestValidator_ValidateVar(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		value   any
		tag     string
		wantErr error
	}{
		{name: "password long enough", value: "password", tag: "min=8"},
		{name: "password too short", value: "short", tag: "min=8", wantErr: ErrValueTooShort},
		{name: "empty required", value: "", tag: "required", wantErr: ErrRequiredFieldMissing},
		{name: "too long", value: "abcdef", tag: "max=3", wantErr: ErrValueTooLong},
		{name: "not an email", value: "nope", tag: "email", wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateVar(ctx, tt.value, tt.tag)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
