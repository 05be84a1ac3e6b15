package store

import (
	"github.com/Wilberforce44/notes-api/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewStorages wires all repositories to the shared database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		NoteRepository: NewNoteRepository(db, logger),
	}
}
