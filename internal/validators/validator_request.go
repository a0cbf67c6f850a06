// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements [Validator] on top of go-playground/validator
// using the `validate` tags declared on request models.
type RequestValidator struct {
	v *validator.Validate
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks every tagged field of value, or only the Go field names
// listed in fields when any are given (e.g. "Limit", "OrderBy").
//
// Each failed rule is wrapped with its sentinel error and the failures are
// joined, so errors.Is matches any of them.
func (r *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = r.v.StructPartialCtx(ctx, value, fields...)
	} else {
		err = r.v.StructCtx(ctx, value)
	}

	return translate(err)
}

// ValidateVar checks a single value against tag.
func (r *RequestValidator) ValidateVar(ctx context.Context, value any, tag string) error {
	return translate(r.v.VarCtx(ctx, value, tag))
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, invalid.Error())
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	errs := make([]error, 0, len(ve))
	for _, fe := range ve {
		errs = append(errs, fieldError(fe))
	}

	return errors.Join(errs...)
}

// fieldError converts a single FieldError into a sentinel-wrapped error.
func fieldError(fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())
	if field == "" {
		field = "value"
	}

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s", ErrRequiredFieldMissing, field)
	case "min", "gte":
		return fmt.Errorf("%w: %s must be at least %s", ErrValueTooShort, field, fe.Param())
	case "max", "lte":
		return fmt.Errorf("%w: %s must be at most %s", ErrValueTooLong, field, fe.Param())
	case "oneof":
		return fmt.Errorf("%w: %s must be one of: %s", ErrValueNotAllowed, field, fe.Param())
	default:
		return fmt.Errorf("%w: %s failed validation (%s)", ErrInvalidValue, field, fe.Tag())
	}
}
