// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wilberforce44

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Wilberforce44/notes-api/internal/service"
	"github.com/Wilberforce44/notes-api/internal/utils"
	"github.com/Wilberforce44/notes-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"other scheme still yields token", "Token abc", "abc", nil},
		{"scheme only", "Bearer", "", ErrInvalidAuthorizationHeader},
		{"empty token part", "Bearer ", "", ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

// nextCapture is a terminal handler that records whether it ran and which
// user id the middleware stored in the context.
type nextCapture struct {
	called bool
	userID int64
	ok     bool
}

func (n *nextCapture) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.userID, n.ok = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Success(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, tokenString string) (models.User, error) {
			assert.Equal(t, "abc.def.ghi", tokenString)
			return models.User{UserID: 7, TokenVersion: 1}, nil
		},
	}
	h := newTestHandler(t, auth, nil)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, next.called)
	assert.True(t, next.ok)
	assert.Equal(t, int64(7), next.userID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}

// TestAuthMiddleware_RevokedToken covers the logout path: Authenticate
// reports a stale token version and the request never reaches the handler.
func TestAuthMiddleware_RevokedToken(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrUnauthenticated
		},
	}
	h := newTestHandler(t, auth, nil)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}
