package models

import "time"

// Note is a user-owned text resource. A note is only ever visible or mutable
// through its owner's authenticated session; deleting the owner cascades to
// the owner's notes at the database level.
type Note struct {
	// NoteID is the internal unique identifier of the note.
	NoteID int64 `json:"id"`

	// OwnerID references the owning user. Immutable after creation.
	OwnerID int64 `json:"-"`

	// Title is a short required heading, bounded to 200 characters.
	Title string `json:"title"`

	// Content is the unbounded note body.
	Content string `json:"content"`

	// IsArchived marks the note as archived without deleting it.
	IsArchived bool `json:"is_archived"`

	// CreatedAt is set once when the note is created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation, whichever fields changed.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteUpdate represents criteria for updating a single note.
// Only non-nil fields will be updated (partial update support).
type NoteUpdate struct {
	// NoteID is the unique identifier of the note to update. Required.
	NoteID int64 `json:"id"`

	// OwnerID is the owner of the note. Required: every update statement
	// filters by both NoteID and OwnerID so a foreign note is
	// indistinguishable from a missing one.
	OwnerID int64 `json:"-"`

	// Title replaces the note title when non-nil.
	Title *string `json:"title,omitempty"`

	// Content replaces the note body when non-nil.
	Content *string `json:"content,omitempty"`

	// IsArchived toggles the archived flag when non-nil.
	IsArchived *bool `json:"is_archived,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u NoteUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.IsArchived == nil
}
