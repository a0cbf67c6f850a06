// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account entity used for authentication.
// Users are created at registration and never updated afterwards.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Name is the login name of the user. It is not unique.
	Name string `json:"name"`

	// Email is the unique e-mail address of the user.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	Password string `json:"-"`

	// Role is a free-form role label supplied at registration.
	Role string `json:"role"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "user"
}
