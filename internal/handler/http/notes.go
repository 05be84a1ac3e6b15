package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Wilberforce44/notes-api/internal/logger"
	"github.com/Wilberforce44/notes-api/internal/service"
	"github.com/Wilberforce44/notes-api/internal/store"
	"github.com/Wilberforce44/notes-api/internal/utils"
	"github.com/Wilberforce44/notes-api/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.NoteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(ctx, userID, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid note data provided")
			http.Error(w, "invalid note data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during note creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during note listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// an owner with no notes gets an empty array, not null
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid note id")
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, userID, noteID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoteNotFound):
			log.Err(err).Int64("noteID", noteID).Msg("note not found")
			http.Error(w, "note not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("noteID", noteID).Msg("unexpected error occurred during note lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid note id")
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return
	}

	var update models.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// identity comes from the URL and the token, never from the body
	update.NoteID = noteID
	update.OwnerID = userID

	note, err := h.services.NoteService.UpdateNote(ctx, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Int64("noteID", noteID).Msg("invalid note update provided")
			http.Error(w, "invalid note update provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoteNotFound):
			log.Err(err).Int64("noteID", noteID).Msg("note not found")
			http.Error(w, "note not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("noteID", noteID).Msg("unexpected error occurred during note update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid note id")
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, userID, noteID); err != nil {
		switch {
		case errors.Is(err, store.ErrNoteNotFound):
			log.Err(err).Int64("noteID", noteID).Msg("note not found")
			http.Error(w, "note not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("noteID", noteID).Msg("unexpected error occurred during note deletion")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// noteIDFromURL parses the {noteID} chi URL parameter.
func noteIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "noteID"), 10, 64)
}
