package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Wilberforce44/notes-api/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, token_version, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, token_version, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, token_version, created_at
    FROM users
    WHERE user_id = $1;`

	bumpTokenVersion = `UPDATE users
    SET token_version = token_version + 1
    WHERE user_id = $1
    RETURNING token_version;`

	createNote = `INSERT INTO notes (owner_id, title, content)
    VALUES ($1, $2, $3)
    RETURNING note_id, owner_id, title, content, is_archived, created_at, updated_at;`

	listNotesByOwner = `SELECT note_id, owner_id, title, content, is_archived, created_at, updated_at
    FROM notes
    WHERE owner_id = $1
    ORDER BY created_at DESC;`

	getNote = `SELECT note_id, owner_id, title, content, is_archived, created_at, updated_at
    FROM notes
    WHERE note_id = $1 AND owner_id = $2;`

	deleteNote = `DELETE FROM notes
    WHERE note_id = $1 AND owner_id = $2;`
)

// buildUpdateNoteQuery builds the partial-update statement for a single note.
//
// Only non-nil fields of update contribute a SET clause; updated_at is always
// refreshed in the same statement, and the WHERE clause filters by note_id
// AND owner_id together so ownership is checked atomically with the update.
func buildUpdateNoteQuery(update models.NoteUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder := sq.Update("notes").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("now()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.IsArchived != nil {
		builder = builder.Set("is_archived", *update.IsArchived)
	}

	builder = builder.
		Where(sq.Eq{"note_id": update.NoteID, "owner_id": update.OwnerID}).
		Suffix("RETURNING note_id, owner_id, title, content, is_archived, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
