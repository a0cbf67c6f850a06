// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Input errors.
var (
	ErrAllFieldsRequired = errors.New("all fields are required")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong   = errors.New("password must be at most 72 bytes long")
	ErrInvalidListParams = errors.New("invalid list parameters")
	ErrInvalidCustomerID = errors.New("invalid customer id")
)

// Credential and token errors.
var (
	ErrWrongPassword       = errors.New("wrong password")
	ErrInvalidToken        = errors.New("token is expired or invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Conflict errors.
var (
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrCustomerAlreadyExists = errors.New("customer already exists")
)

var ErrVersionIsNotSpecified = errors.New("app version is not specified")
