package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Username string     `json:"username" validate:"required,min=5,alphanum"`
	Password string     `json:"password" validate:"required,min=8"`
	Email    string     `json:"email,omitempty" validate:"omitempty,email"`
	Name     string     `json:"name,omitempty"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

type renameRequest struct {
	NewUsername string `json:"newUsername" validate:"required,min=5,alphanum"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --- Response types ---

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type messageResponse struct {
	Message string `json:"message"`
}
