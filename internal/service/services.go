package service

import (
	"github.com/Wilberforce44/notes-api/internal/config"
	"github.com/Wilberforce44/notes-api/internal/logger"
	"github.com/Wilberforce44/notes-api/internal/store"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AuthService AuthService
	NoteService NoteService
}

// NewServices wires all services to their repositories and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		NoteService: NewNoteService(storages.NoteRepository, logger),
	}
}
