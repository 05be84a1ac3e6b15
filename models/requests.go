package models

// SignupRequest is the JSON body of POST /api/auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the JSON body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// NoteCreateRequest is the JSON body of POST /api/notes.
type NoteCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
