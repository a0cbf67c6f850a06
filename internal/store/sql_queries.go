// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-customer-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	// "user" is reserved in PostgreSQL and must always be quoted.
	userTable      = `"` + models.User{}.TableName() + `"`
	customersTable = models.Customer{}.TableName()

	userColumns     = []string{"id", "name", "email", "password", "role"}
	customerColumns = []string{"id", "name", "email", "phone", "company", "created_at"}
)

// customerOrderColumns is the allow-list of sortable columns. Keys are the
// values accepted from callers; values are the SQL column names.
var customerOrderColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"email":      "email",
	"phone":      "phone",
	"company":    "company",
	"created_at": "created_at",
}

func buildCreateUserQuery(d sqlDialect, user models.User) (string, []any, error) {
	return d.builder.
		Insert(userTable).
		Columns("name", "email", "password", "role").
		Values(user.Name, user.Email, user.Password, user.Role).
		Suffix("RETURNING id").
		ToSql()
}

// buildFindUserQuery selects the first user (lowest id) whose column equals value.
func buildFindUserQuery(d sqlDialect, column, value string) (string, []any, error) {
	return d.builder.
		Select(userColumns...).
		From(userTable).
		Where(sq.Eq{column: value}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
}

func buildCreateCustomerQuery(d sqlDialect, customer models.Customer) (string, []any, error) {
	return d.builder.
		Insert(customersTable).
		Columns("name", "email", "phone", "company", "created_at").
		Values(customer.Name, customer.Email, customer.Phone, customer.Company, customer.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildGetCustomerQuery(d sqlDialect, column string, value any) (string, []any, error) {
	return d.builder.
		Select(customerColumns...).
		From(customersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

func buildDeleteCustomerByIDQuery(d sqlDialect, id int64) (string, []any, error) {
	return d.builder.
		Delete(customersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildListCustomersQuery builds one page of customers.
//
// Non-empty substring filters are OR-combined; with none set every row
// matches. Ties on the sort column are broken by id in the same direction.
func buildListCustomersQuery(d sqlDialect, filter models.CustomerFilter) (string, []any, error) {
	column, ok := customerOrderColumns[filter.OrderBy]
	if !ok {
		return "", nil, fmt.Errorf("%w: column %q", ErrInvalidOrderBy, filter.OrderBy)
	}

	direction := strings.ToUpper(filter.Order)
	if direction != "ASC" && direction != "DESC" {
		return "", nil, fmt.Errorf("%w: direction %q", ErrInvalidOrderBy, filter.Order)
	}

	query := d.builder.
		Select(customerColumns...).
		From(customersTable)

	or := sq.Or{}
	for _, f := range []struct{ column, value string }{
		{"company", filter.Company},
		{"name", filter.Name},
		{"phone", filter.Phone},
		{"email", filter.Email},
	} {
		if f.value != "" {
			or = append(or, d.contains(f.column, f.value))
		}
	}
	if len(or) > 0 {
		query = query.Where(or)
	}

	query = query.OrderBy(column + " " + direction)
	if column != "id" {
		query = query.OrderBy("id " + direction)
	}

	return query.
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSql()
}
