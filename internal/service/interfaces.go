package service

import (
	"context"

	"github.com/Wilberforce44/notes-api/models"
)

// AuthService owns account registration, credential verification, token
// issuance, and the per-request token-to-user resolution.
type AuthService interface {
	RegisterUser(ctx context.Context, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.TokenPair, error)
	RefreshTokenPair(ctx context.Context, refreshToken string) (models.TokenPair, error)

	// Authenticate resolves a raw bearer token to a live user record,
	// enforcing signature, expiry, and the token_version revocation
	// counter. It performs exactly one store lookup per call so a bump
	// is observable immediately.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	Logout(ctx context.Context, userID int64) error
}

// NoteService validates note input and delegates owner-scoped persistence
// to the note repository.
type NoteService interface {
	CreateNote(ctx context.Context, ownerID int64, req models.NoteCreateRequest) (models.Note, error)
	ListNotes(ctx context.Context, ownerID int64) ([]models.Note, error)
	GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID int64) error
}
