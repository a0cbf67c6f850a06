// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	JWTToken string `json:"jwtToken"`
}

// CreateCustomerResponse carries the identifier generated for a new customer.
type CreateCustomerResponse struct {
	CustomerID int64 `json:"customerId"`
}
