// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary structures and
//     single values. Supports optional field-level scoping for targeted
//     validation.
//
// Rules are declared with `validate` struct tags on the request models and
// evaluated by go-playground/validator. Failures are reported as the
// sentinel errors of this package so callers can branch with errors.Is
// without depending on the validation library.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided struct and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error

	// ValidateVar validates a single value against a tag expression
	// such as "required,min=8".
	ValidateVar(context.Context, any, string) error
}
