// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserExists is returned when inserting a user violates the unique
	// constraint on email.
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a user lookup produces an empty
	// result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrCustomerExists is returned when inserting a customer violates the
	// unique constraint on email.
	ErrCustomerExists = errors.New("customer already exists")

	// ErrCustomerNotFound is returned when no customer matches the requested
	// id or email, including deletes that affect zero rows.
	ErrCustomerNotFound = errors.New("customer was not found")

	// ErrUnsupportedDriver is returned by [NewDB] for drivers other than
	// sqlite3 and pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrStoreUnavailable is returned when the driver reports that the
	// database cannot be reached.
	ErrStoreUnavailable = errors.New("storage is unavailable")

	// ErrInvalidOrderBy is returned when a listing is requested with a sort
	// column or direction outside the allow-list.
	ErrInvalidOrderBy = errors.New("invalid order by")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
