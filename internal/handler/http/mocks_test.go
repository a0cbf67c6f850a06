// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/service"
	"github.com/MKhiriev/go-customer-keeper/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Claims, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockCustomerService implements service.CustomerService for unit tests.
type mockCustomerService struct {
	listCustomersFn  func(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error)
	createCustomerFn func(ctx context.Context, req models.CreateCustomerRequest) (models.Customer, error)
	getCustomerFn    func(ctx context.Context, id int64) (models.Customer, error)
	deleteCustomerFn func(ctx context.Context, id int64) error
}

func (m *mockCustomerService) ListCustomers(ctx context.Context, filter models.CustomerFilter) ([]models.Customer, error) {
	return m.listCustomersFn(ctx, filter)
}

func (m *mockCustomerService) CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (models.Customer, error) {
	return m.createCustomerFn(ctx, req)
}

func (m *mockCustomerService) GetCustomer(ctx context.Context, id int64) (models.Customer, error) {
	return m.getCustomerFn(ctx, id)
}

func (m *mockCustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	return m.deleteCustomerFn(ctx, id)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version   string
	healthErr error
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

func (m *mockAppInfoService) CheckHealth(ctx context.Context) error {
	return m.healthErr
}

// validToken is accepted by acceptingAuthService.
const validToken = "valid-token"

// acceptingAuthService accepts validToken only.
func acceptingAuthService() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Claims, error) {
			if tokenString != validToken {
				return models.Claims{}, service.ErrInvalidToken
			}
			return models.Claims{Username: "alice"}, nil
		},
	}
}

// newTestHandler builds a Handler over the given services with rate limiting
// disabled.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}
