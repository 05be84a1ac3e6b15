package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Wilberforce44/notes-api/internal/logger"
	"github.com/Wilberforce44/notes-api/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations directly against the "notes" table
// using the embedded [*DB] connection.
//
// Every statement that targets a single note filters by note_id AND owner_id
// in the same query. There is no separate ownership check: a note owned by
// another user and a note that does not exist produce the same
// [ErrNoteNotFound], which keeps note existence unobservable across accounts
// and leaves no window between lookup and mutation.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote persists a new note owned by note.OwnerID and returns the fully
// populated [models.Note] with server-assigned fields (NoteID, timestamps,
// IsArchived default).
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createNote, note.OwnerID, note.Title, note.Content)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Int64("owner_id", note.OwnerID).
			Msg("failed to execute insert for new note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := scanNote(row, &note); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Int64("owner_id", note.OwnerID).
			Msg("failed to scan created note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// ListNotes retrieves every note owned by the given user, most recent first
// (created_at descending). The result is a finite one-shot slice; an owner
// with no notes gets an empty slice, not an error.
func (r *noteRepository) ListNotes(ctx context.Context, ownerID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listNotesByOwner, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.ListNotes").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 20)

	for rows.Next() {
		var note models.Note

		if scanErr := scanNote(rows, &note); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*noteRepository.ListNotes").
				Int64("owner_id", ownerID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*noteRepository.ListNotes").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// GetNote retrieves a single note by id, scoped to the given owner.
//
// Zero matching rows → [ErrNoteNotFound], whether the note is absent or
// belongs to someone else.
func (r *noteRepository) GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := r.DB.QueryRowContext(ctx, getNote, noteID, ownerID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.GetNote").
			Int64("owner_id", ownerID).
			Int64("note_id", noteID).
			Msg("failed to execute query for getting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := scanNote(row, &note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "*noteRepository.GetNote").
			Int64("owner_id", ownerID).
			Int64("note_id", noteID).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// UpdateNote applies a partial update to a single note and returns the
// refreshed record.
//
// The statement is built by [buildUpdateNoteQuery]: only supplied fields are
// changed, updated_at is always refreshed, and the WHERE clause carries both
// note_id and owner_id so the ownership check and the mutation are one
// atomic statement. Zero matching rows → [ErrNoteNotFound].
func (r *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.UpdateNote").
			Int64("owner_id", update.OwnerID).
			Int64("note_id", update.NoteID).
			Msg("failed to build update query")
		return models.Note{}, err
	}

	var note models.Note
	row := r.DB.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.UpdateNote").
			Int64("owner_id", update.OwnerID).
			Int64("note_id", update.NoteID).
			Msg("failed to execute update statement")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := scanNote(row, &note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "*noteRepository.UpdateNote").
			Int64("owner_id", update.OwnerID).
			Int64("note_id", update.NoteID).
			Msg("failed to scan updated note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// DeleteNote removes a single note, scoped to the given owner.
//
// Zero affected rows → [ErrNoteNotFound].
func (r *noteRepository) DeleteNote(ctx context.Context, ownerID, noteID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteNote, noteID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Int64("owner_id", ownerID).
			Int64("note_id", noteID).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Int64("owner_id", ownerID).
			Int64("note_id", noteID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner, note *models.Note) error {
	return row.Scan(
		&note.NoteID,
		&note.OwnerID,
		&note.Title,
		&note.Content,
		&note.IsArchived,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
}
