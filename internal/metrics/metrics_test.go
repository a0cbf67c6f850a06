// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ExposesCollectors(t *testing.T) {
	HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/customers", "200").Inc()
	RateLimitedTotal.Inc()
	AuthFailuresTotal.WithLabelValues(ReasonMissingHeader).Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "customer_keeper_http_requests_total")
	assert.Contains(t, body, "customer_keeper_rate_limited_total")
	assert.Contains(t, body, `customer_keeper_auth_failures_total{reason="missing_header"}`)
}
