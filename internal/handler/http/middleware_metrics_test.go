// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-customer-keeper/internal/service"
	"github.com/MKhiriev/go-customer-keeper/internal/store"
	"github.com/MKhiriev/go-customer-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	customers := &mockCustomerService{
		getCustomerFn: func(context.Context, int64) (models.Customer, error) {
			return models.Customer{}, store.ErrCustomerNotFound
		},
	}
	router := newTestHandler(&service.Services{
		AuthService:     acceptingAuthService(),
		CustomerService: customers,
	}).Init()

	req := httptest.NewRequest(http.MethodGet, "/customers/918273645", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// rejected before the subrouter resolves the leaf route
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/customers", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `method="GET",route="/customers/{id}",status="404"`)
	assert.NotContains(t, body, `route="/customers/918273645"`)
	assert.Contains(t, body, `customer_keeper_auth_failures_total{reason="missing_header"}`)
}
