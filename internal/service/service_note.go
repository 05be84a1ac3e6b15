package service

import (
	"context"
	"unicode/utf8"

	"github.com/Wilberforce44/notes-api/internal/logger"
	"github.com/Wilberforce44/notes-api/internal/store"
	"github.com/Wilberforce44/notes-api/models"
)

// maxNoteTitleLength is the upper bound on title length in runes.
const maxNoteTitleLength = 200

type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (n *noteService) CreateNote(ctx context.Context, ownerID int64, request models.NoteCreateRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := validateTitle(request.Title); err != nil {
		log.Error().Int64("ownerID", ownerID).Str("title", request.Title).Msg("invalid note title")
		return models.Note{}, err
	}
	if request.Content == "" {
		log.Error().Int64("ownerID", ownerID).Msg("empty note content")
		return models.Note{}, ErrInvalidDataProvided
	}

	return n.noteRepository.CreateNote(ctx, models.Note{
		OwnerID: ownerID,
		Title:   request.Title,
		Content: request.Content,
	})
}

func (n *noteService) ListNotes(ctx context.Context, ownerID int64) ([]models.Note, error) {
	return n.noteRepository.ListNotes(ctx, ownerID)
}

func (n *noteService) GetNote(ctx context.Context, ownerID int64, noteID int64) (models.Note, error) {
	return n.noteRepository.GetNote(ctx, ownerID, noteID)
}

// UpdateNote applies a partial update. Absent fields keep their stored values;
// a fully empty update is rejected before touching the repository.
func (n *noteService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		log.Error().Int64("ownerID", update.OwnerID).Int64("noteID", update.NoteID).Msg("empty note update")
		return models.Note{}, ErrInvalidDataProvided
	}
	if update.Title != nil {
		if err := validateTitle(*update.Title); err != nil {
			log.Error().Int64("ownerID", update.OwnerID).Int64("noteID", update.NoteID).Msg("invalid note title")
			return models.Note{}, err
		}
	}
	if update.Content != nil && *update.Content == "" {
		log.Error().Int64("ownerID", update.OwnerID).Int64("noteID", update.NoteID).Msg("empty note content")
		return models.Note{}, ErrInvalidDataProvided
	}

	return n.noteRepository.UpdateNote(ctx, update)
}

func (n *noteService) DeleteNote(ctx context.Context, ownerID int64, noteID int64) error {
	return n.noteRepository.DeleteNote(ctx, ownerID, noteID)
}

func validateTitle(title string) error {
	if title == "" || utf8.RuneCountInString(title) > maxNoteTitleLength {
		return ErrInvalidDataProvided
	}
	return nil
}
