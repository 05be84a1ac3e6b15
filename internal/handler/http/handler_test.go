// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wilberforce44

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Wilberforce44/notes-api/internal/logger"
	"github.com/Wilberforce44/notes-api/internal/service"
	"github.com/Wilberforce44/notes-api/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn     func(ctx context.Context, email, password string) (models.User, error)
	loginFn            func(ctx context.Context, email, password string) (models.TokenPair, error)
	refreshTokenPairFn func(ctx context.Context, refreshToken string) (models.TokenPair, error)
	authenticateFn     func(ctx context.Context, tokenString string) (models.User, error)
	logoutFn           func(ctx context.Context, userID int64) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, email, password string) (models.User, error) {
	return m.registerUserFn(ctx, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.TokenPair, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) RefreshTokenPair(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	return m.refreshTokenPairFn(ctx, refreshToken)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return m.authenticateFn(ctx, tokenString)
}

func (m *mockAuthService) Logout(ctx context.Context, userID int64) error {
	return m.logoutFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Mock NoteService
// ─────────────────────────────────────────────

// mockNoteService implements service.NoteService for unit tests.
type mockNoteService struct {
	createNoteFn func(ctx context.Context, ownerID int64, req models.NoteCreateRequest) (models.Note, error)
	listNotesFn  func(ctx context.Context, ownerID int64) ([]models.Note, error)
	getNoteFn    func(ctx context.Context, ownerID, noteID int64) (models.Note, error)
	updateNoteFn func(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	deleteNoteFn func(ctx context.Context, ownerID, noteID int64) error
}

func (m *mockNoteService) CreateNote(ctx context.Context, ownerID int64, req models.NoteCreateRequest) (models.Note, error) {
	return m.createNoteFn(ctx, ownerID, req)
}

func (m *mockNoteService) ListNotes(ctx context.Context, ownerID int64) ([]models.Note, error) {
	return m.listNotesFn(ctx, ownerID)
}

func (m *mockNoteService) GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error) {
	return m.getNoteFn(ctx, ownerID, noteID)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	return m.updateNoteFn(ctx, update)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, ownerID, noteID int64) error {
	return m.deleteNoteFn(ctx, ownerID, noteID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Either mock
// may be nil when a test never reaches that service.
func newTestHandler(t *testing.T, auth service.AuthService, notes service.NoteService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
		NoteService: notes,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// doAuthed runs an authenticated request through the full router so that the
// auth middleware and chi URL params behave as in production. The
// mockAuthService must carry an authenticateFn.
func doAuthed(h *Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer test.jwt.token")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)
	return rec
}

// authAs returns an Authenticate stub that resolves any token to the given
// user id.
func authAs(userID int64) func(ctx context.Context, tokenString string) (models.User, error) {
	return func(_ context.Context, _ string) (models.User, error) {
		return models.User{UserID: userID, Email: "alice@example.com", TokenVersion: 1}, nil
	}
}

var errBoom = errors.New("boom")
