// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by every bearer token.
//
// Username identifies the authenticated user. [jwt.RegisteredClaims] holds
// the standard claim set; "iat" and "iss" are always present, "exp" only
// when tokens are issued with a positive lifetime.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Token wraps a signed JWT together with the claims it was built from.
type Token struct {
	// Claims is the payload that was signed.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
