// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrRequiredFieldMissing = errors.New("required field is missing")
	ErrValueTooShort        = errors.New("value is too short")
	ErrValueTooLong         = errors.New("value is too long")
	ErrValueNotAllowed      = errors.New("value is not allowed")
	ErrInvalidValue         = errors.New("invalid value")
)
