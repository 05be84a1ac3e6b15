// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wilberforce44

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Wilberforce44/notes-api/internal/logger"
	"github.com/Wilberforce44/notes-api/internal/store"
	"github.com/Wilberforce44/notes-api/internal/utils"
	"github.com/Wilberforce44/notes-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn       func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn  func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn     func(ctx context.Context, userID int64) (models.User, error)
	bumpTokenVersionFn func(ctx context.Context, userID int64) (int, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) BumpTokenVersion(ctx context.Context, userID int64) (int, error) {
	if m.bumpTokenVersionFn != nil {
		return m.bumpTokenVersionFn(ctx, userID)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testSignKey = "test-sign-key"
	testIssuer  = "notes-api"
)

func newTestAuthService(repo *mockUserRepository) *authService {
	return &authService{
		userRepository:  repo,
		tokenSignKey:    testSignKey,
		tokenIssuer:     testIssuer,
		accessTokenTTL:  15 * time.Minute,
		refreshTokenTTL: 7 * 24 * time.Hour,
		logger:          logger.Nop(),
	}
}

// signTestToken issues a token with the service's own key and issuer so that
// validation succeeds unless the test breaks something else on purpose.
func signTestToken(t *testing.T, userID int64, version int, tokenType models.TokenType, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, userID, version, tokenType, ttl, testSignKey)
	require.NoError(t, err)
	return token.SignedString
}

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "alice@example.com", user.Email)
			assert.True(t, utils.VerifyPassword(user.PasswordHash, "s3cret"), "stored hash must verify against the plain password")
			user.UserID = 1
			user.TokenVersion = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), "alice@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "alice@example.com", registered.Email)
}

func TestAuthService_RegisterUser_InvalidInput(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "s3cret"},
		{"malformed email", "not-an-address", "s3cret"},
		{"empty password", "alice@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), "alice@example.com", "s3cret")

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, "alice@example.com", email)
			return models.User{UserID: 1, Email: email, PasswordHash: hash, TokenVersion: 3}, nil
		},
	}
	svc := newTestAuthService(repo)

	pair, err := svc.Login(context.Background(), "alice@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenTypeHint)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	access, err := utils.ValidateAndParseJWTToken(pair.AccessToken, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), access.UserID)
	assert.Equal(t, 3, access.Version)
	assert.Equal(t, models.TokenTypeAccess, access.Claims.TokenType)

	refresh, err := utils.ValidateAndParseJWTToken(pair.RefreshToken, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), refresh.UserID)
	assert.Equal(t, 3, refresh.Version)
	assert.Equal(t, models.TokenTypeRefresh, refresh.Claims.TokenType)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "ghost@example.com", "s3cret")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, PasswordHash: hash, TokenVersion: 1}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), "", "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errStorage
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "alice@example.com", "s3cret")

	require.Error(t, err)
	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func TestAuthService_Authenticate_Success(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(1), userID)
			return models.User{UserID: 1, Email: "alice@example.com", TokenVersion: 2}, nil
		},
	}
	svc := newTestAuthService(repo)
	tokenString := signTestToken(t, 1, 2, models.TokenTypeAccess, time.Minute)

	user, err := svc.Authenticate(context.Background(), tokenString)

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestAuthService_Authenticate_GarbageToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Authenticate(context.Background(), "definitely.not.a-jwt")

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_Authenticate_WrongSignKey(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	forged, err := utils.GenerateJWTToken(testIssuer, 1, 2, models.TokenTypeAccess, time.Minute, "other-key")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), forged.SignedString)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_Authenticate_Expired(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	tokenString := signTestToken(t, 1, 2, models.TokenTypeAccess, -time.Minute)

	_, err := svc.Authenticate(context.Background(), tokenString)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_Authenticate_UnknownUser(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)
	tokenString := signTestToken(t, 42, 1, models.TokenTypeAccess, time.Minute)

	_, err := svc.Authenticate(context.Background(), tokenString)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

// TestAuthService_Authenticate_StaleVersion is the revocation path: a token
// minted before a Logout carries the old version and must be rejected even
// though its signature and expiry are still valid.
func TestAuthService_Authenticate_StaleVersion(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{UserID: 1, TokenVersion: 5}, nil
		},
	}
	svc := newTestAuthService(repo)
	tokenString := signTestToken(t, 1, 4, models.TokenTypeAccess, time.Minute)

	_, err := svc.Authenticate(context.Background(), tokenString)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

// ─────────────────────────────────────────────
// RefreshTokenPair
// ─────────────────────────────────────────────

func TestAuthService_RefreshTokenPair_Success(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{UserID: 1, Email: "alice@example.com", TokenVersion: 2}, nil
		},
	}
	svc := newTestAuthService(repo)
	refreshString := signTestToken(t, 1, 2, models.TokenTypeRefresh, time.Hour)

	pair, err := svc.RefreshTokenPair(context.Background(), refreshString)

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	access, err := utils.ValidateAndParseJWTToken(pair.AccessToken, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, models.TokenTypeAccess, access.Claims.TokenType)
	assert.Equal(t, 2, access.Version)
}

func TestAuthService_RefreshTokenPair_RejectsAccessToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	accessString := signTestToken(t, 1, 2, models.TokenTypeAccess, time.Minute)

	_, err := svc.RefreshTokenPair(context.Background(), accessString)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_RefreshTokenPair_StaleVersion(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{UserID: 1, TokenVersion: 9}, nil
		},
	}
	svc := newTestAuthService(repo)
	refreshString := signTestToken(t, 1, 8, models.TokenTypeRefresh, time.Hour)

	_, err := svc.RefreshTokenPair(context.Background(), refreshString)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_RefreshTokenPair_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RefreshTokenPair(context.Background(), "")

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

// ─────────────────────────────────────────────
// Logout
// ─────────────────────────────────────────────

func TestAuthService_Logout_Success(t *testing.T) {
	bumped := false
	repo := &mockUserRepository{
		bumpTokenVersionFn: func(_ context.Context, userID int64) (int, error) {
			assert.Equal(t, int64(1), userID)
			bumped = true
			return 6, nil
		},
	}
	svc := newTestAuthService(repo)

	err := svc.Logout(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, bumped)
}

func TestAuthService_Logout_UnknownUser(t *testing.T) {
	repo := &mockUserRepository{
		bumpTokenVersionFn: func(_ context.Context, _ int64) (int, error) {
			return 0, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	err := svc.Logout(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_Logout_StorageError(t *testing.T) {
	repo := &mockUserRepository{
		bumpTokenVersionFn: func(_ context.Context, _ int64) (int, error) {
			return 0, errStorage
		},
	}
	svc := newTestAuthService(repo)

	err := svc.Logout(context.Background(), 1)

	assert.ErrorIs(t, err, errStorage)
}
