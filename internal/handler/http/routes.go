// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-customer-keeper/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer, h.withCORS, h.withRateLimit)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// service routes
	router.Get("/healthz", h.health)
	router.Get("/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	// routes without authorization
	router.Route("/user", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/register", h.register)
	})

	router.Route("/customers", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listCustomers)
		r.Post("/", h.createCustomer)
		r.Get("/{id}", h.getCustomer)
		r.Delete("/{id}", h.deleteCustomer)
	})

	return router
}
