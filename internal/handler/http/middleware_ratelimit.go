// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/metrics"
	"github.com/MKhiriev/go-customer-keeper/internal/utils"
)

// withRateLimit rejects requests with 429 once the global token bucket is
// empty. It passes everything through when no limiter is configured.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter != nil && !h.limiter.Allow() {
			metrics.RateLimitedTotal.Inc()
			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("rate limit exceeded")
			utils.WriteText(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
