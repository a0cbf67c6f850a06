// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-customer-keeper/internal/service"
	"github.com/MKhiriev/go-customer-keeper/internal/utils"
	"github.com/MKhiriev/go-customer-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	filter, err := parseCustomerFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	customers, err := h.services.CustomerService.ListCustomers(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, customers, http.StatusOK)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	customer, err := h.services.CustomerService.CreateCustomer(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CreateCustomerResponse{CustomerID: customer.ID}, http.StatusOK)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseCustomerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	customer, err := h.services.CustomerService.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, customer, http.StatusOK)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseCustomerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CustomerService.DeleteCustomer(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteText(w, "Customer deleted successfully", http.StatusOK)
}

// parseCustomerFilter reads the listing query parameters over the defaults
// of [models.NewCustomerFilter]. offset and limit must be non-negative
// integers that fit in a signed 64-bit SQL integer; order and order_by are
// checked by the service.
func parseCustomerFilter(r *http.Request) (models.CustomerFilter, error) {
	query := r.URL.Query()
	filter := models.NewCustomerFilter()

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 63)
		if err != nil {
			return models.CustomerFilter{}, fmt.Errorf("%w: offset %q", ErrInvalidQueryParameter, raw)
		}
		filter.Offset = offset
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 63)
		if err != nil {
			return models.CustomerFilter{}, fmt.Errorf("%w: limit %q", ErrInvalidQueryParameter, raw)
		}
		filter.Limit = limit
	}

	if raw := query.Get("order"); raw != "" {
		filter.Order = raw
	}
	if raw := query.Get("order_by"); raw != "" {
		filter.OrderBy = raw
	}

	filter.Company = query.Get("company")
	filter.Name = query.Get("name")
	filter.Phone = query.Get("phone")
	filter.Email = query.Get("email")

	return filter, nil
}

func parseCustomerID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", service.ErrInvalidCustomerID, raw)
	}

	return id, nil
}
