package store

import (
	"context"

	"github.com/Wilberforce44/notes-api/models"
)

// UserRepository is the credential store: it persists user identity, the
// password hash, and the token_version revocation counter.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// BumpTokenVersion atomically increments the user's revocation counter
	// and returns the new value. A token validated concurrently with the
	// bump observes either the pre- or post-increment value, never a
	// partial write.
	BumpTokenVersion(ctx context.Context, userID int64) (int, error)
}

// NoteRepository persists notes. Every single-note operation filters by both
// note id and owner id in one statement, so a foreign note is
// indistinguishable from a missing one.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, ownerID int64) ([]models.Note, error)
	GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID int64) error
}
