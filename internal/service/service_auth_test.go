// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/internal/mock"
	"github.com/MKhiriev/go-customer-keeper/internal/store"
	"github.com/MKhiriev/go-customer-keeper/internal/utils"
	"github.com/MKhiriev/go-customer-keeper/internal/validators"
	"github.com/MKhiriev/go-customer-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	cfg := config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "customer-keeper-test",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}

	return NewAuthService(repo, validators.NewRequestValidator(), cfg, logger.Nop()), repo
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     "admin",
	}
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)
	req := validRegisterRequest()

	repo.EXPECT().FindUserByEmail(gomock.Any(), req.Email).Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, req.Name, u.Name)
			assert.Equal(t, req.Email, u.Email)
			assert.Equal(t, req.Role, u.Role)
			assert.NotEqual(t, req.Password, u.Password, "password must be hashed")

			ok, err := utils.CheckPassword(u.Password, req.Password)
			require.NoError(t, err)
			assert.True(t, ok)

			u.UserID = 1
			return u, nil
		})

	user, err := svc.RegisterUser(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "alice", user.Name)
}

func TestAuthService_RegisterUser_MissingField(t *testing.T) {
	for _, field := range []string{"name", "email", "password", "role"} {
		t.Run(field, func(t *testing.T) {
			svc, _ := newTestAuthService(t)
			req := validRegisterRequest()
			switch field {
			case "name":
				req.Name = ""
			case "email":
				req.Email = ""
			case "password":
				req.Password = ""
			case "role":
				req.Role = ""
			}

			_, err := svc.RegisterUser(context.Background(), req)

			assert.ErrorIs(t, err, ErrAllFieldsRequired)
		})
	}
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	svc, repo := newTestAuthService(t)
	req := validRegisterRequest()

	repo.EXPECT().FindUserByEmail(gomock.Any(), req.Email).Return(models.User{UserID: 7, Email: req.Email}, nil)

	_, err := svc.RegisterUser(context.Background(), req)

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_RegisterUser_EmailTakenWinsOverShortPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)
	req := validRegisterRequest()
	req.Password = "short"

	repo.EXPECT().FindUserByEmail(gomock.Any(), req.Email).Return(models.User{UserID: 7}, nil)

	_, err := svc.RegisterUser(context.Background(), req)

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_RegisterUser_PasswordTooShort(t *testing.T) {
	svc, repo := newTestAuthService(t)
	req := validRegisterRequest()
	req.Password = "1234567"

	repo.EXPECT().FindUserByEmail(gomock.Any(), req.Email).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.RegisterUser(context.Background(), req)

	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestAuthService_RegisterUser_PasswordTooLong(t *testing.T) {
	svc, repo := newTestAuthService(t)
	req := validRegisterRequest()
	req.Password = strings.Repeat("p", 73)

	repo.EXPECT().FindUserByEmail(gomock.Any(), req.Email).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.RegisterUser(context.Background(), req)

	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestAuthService_RegisterUser_LookupFails(t *testing.T) {
	svc, repo := newTestAuthService(t)
	req := validRegisterRequest()
	dbErr := errors.New("connection refused")

	repo.EXPECT().FindUserByEmail(gomock.Any(), req.Email).Return(models.User{}, dbErr)

	_, err := svc.RegisterUser(context.Background(), req)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_RegisterUser_ConcurrentInsert(t *testing.T) {
	svc, repo := newTestAuthService(t)
	req := validRegisterRequest()

	repo.EXPECT().FindUserByEmail(gomock.Any(), req.Email).Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserExists)

	_, err := svc.RegisterUser(context.Background(), req)

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{UserID: 3, Name: "alice", Email: "alice@example.com", Password: hash, Role: "admin"}

	t.Run("success", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByName(gomock.Any(), "alice").Return(stored, nil)

		user, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "password123"})

		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByName(gomock.Any(), "bob").Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.Login(context.Background(), models.LoginRequest{Username: "bob", Password: "password123"})

		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByName(gomock.Any(), "alice").Return(stored, nil)

		_, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "wrong-password"})

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("empty password", func(t *testing.T) {
		svc, repo := newTestAuthService(t)
		repo.EXPECT().FindUserByName(gomock.Any(), "alice").Return(stored, nil)

		_, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice"})

		assert.ErrorIs(t, err, ErrWrongPassword)
	})
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, err := svc.CreateToken(context.Background(), models.User{Name: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	claims, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "customer-keeper-test", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestAuthService_CreateToken_EmptyName(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.CreateToken(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)

	foreign, err := utils.GenerateJWTToken("customer-keeper-test", "alice", time.Hour, "another-key")
	require.NoError(t, err)

	otherIssuer, err := utils.GenerateJWTToken("someone-else", "alice", time.Hour, "test-sign-key")
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":      "not-a-jwt",
		"empty":        "",
		"wrong key":    foreign.SignedString,
		"wrong issuer": otherIssuer.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
