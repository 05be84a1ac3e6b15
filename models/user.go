package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique user identifier used during authentication.
	// Uniqueness is case-sensitive and enforced by the database.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt encoding of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	PasswordHash string `json:"-"`

	// TokenVersion is the revocation counter copied into every issued token.
	// Incrementing it invalidates all previously issued tokens at once.
	// Starts at 1 and only ever increases.
	TokenVersion int `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
