// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Paging and ordering defaults applied to customer listing when the caller
// omits the corresponding query parameters.
const (
	DefaultCustomersOffset  = 0
	DefaultCustomersLimit   = 10
	MaxCustomersLimit       = 100
	DefaultCustomersOrder   = "ASC"
	DefaultCustomersOrderBy = "created_at"
)

// LoginRequest is the body of POST /user/login.
// Fields are not validated for presence before the store lookup.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /user/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// CreateCustomerRequest is the body of POST /customers.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Company string `json:"company" validate:"required"`
}

// CustomerFilter describes a page of customers to list.
//
// Company, Name, Phone and Email are substring filters combined with OR:
// a customer matches when any non-empty filter is contained in the
// corresponding column. Empty filters do not restrict the result.
type CustomerFilter struct {
	Offset  uint64
	Limit   uint64 `validate:"lte=100"`
	Order   string `validate:"oneof=ASC DESC"`
	OrderBy string `validate:"oneof=id name email phone company created_at"`

	Company string
	Name    string
	Phone   string
	Email   string
}

// NewCustomerFilter returns a CustomerFilter populated with the listing defaults.
func NewCustomerFilter() CustomerFilter {
	return CustomerFilter{
		Offset:  DefaultCustomersOffset,
		Limit:   DefaultCustomersLimit,
		Order:   DefaultCustomersOrder,
		OrderBy: DefaultCustomersOrderBy,
	}
}
