// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the
// application: typed context keys, bcrypt password hashing, HTTP response
// writing, JWT token generation and validation, and UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-customer-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the auth middleware stores the decoded
// token payload ([models.Claims]) of the authenticated user.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying claims under [UserCtxKey].
func WithUser(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, UserCtxKey, claims)
}

// GetUserFromContext retrieves the token payload stored by [WithUser].
//
// Returns the claims and an ok flag:
//   - ok == true : value is found and has the models.Claims type
//   - ok == false: value is missing or has an unexpected type
func GetUserFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(UserCtxKey).(models.Claims)
	return claims, ok
}
