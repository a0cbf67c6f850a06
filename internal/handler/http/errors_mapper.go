// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/service"
	"github.com/MKhiriev/go-customer-keeper/internal/store"
	"github.com/MKhiriev/go-customer-keeper/internal/utils"
)

const internalServerErrorMessage = "Internal Server Error"

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched top to bottom, the first target found in the
// error chain wins.
var errorResponses = []errorResponse{
	{ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON was passed"},
	{ErrInvalidQueryParameter, http.StatusBadRequest, "Invalid list parameters"},

	{service.ErrAllFieldsRequired, http.StatusBadRequest, "All fields are required"},
	{service.ErrPasswordTooShort, http.StatusBadRequest, "Password must be at least 8 characters long"},
	{service.ErrPasswordTooLong, http.StatusBadRequest, "Password must be at most 72 bytes long"},
	{service.ErrInvalidListParams, http.StatusBadRequest, "Invalid list parameters"},
	{service.ErrInvalidCustomerID, http.StatusBadRequest, "Invalid customer id"},

	{service.ErrWrongPassword, http.StatusBadRequest, "Invalid Password"},

	{service.ErrUserAlreadyExists, http.StatusBadRequest, "User already exists"},
	{store.ErrUserExists, http.StatusBadRequest, "User already exists"},
	{service.ErrCustomerAlreadyExists, http.StatusBadRequest, "Customer already exists"},
	{store.ErrCustomerExists, http.StatusBadRequest, "Customer already exists"},

	{service.ErrInvalidToken, http.StatusUnauthorized, "Unauthorized"},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, "Unauthorized"},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, "Unauthorized"},
	{ErrEmptyToken, http.StatusUnauthorized, "Unauthorized"},

	{store.ErrUserNotFound, http.StatusNotFound, "Invalid User"},
	{store.ErrCustomerNotFound, http.StatusNotFound, "Customer not found"},

	{store.ErrStoreUnavailable, http.StatusServiceUnavailable, "Service Unavailable"},
}

// responseFromError returns the status code and the plain-text message sent
// to the client for err. Unknown errors are reported as 500.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, internalServerErrorMessage
}

// writeError logs err and writes the mapped response. Internal details are
// only logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := responseFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteText(w, message, status)
}
