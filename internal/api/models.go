package api

import (
	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	UserID  uuid.UUID `json:"userId"`
}

// GenerateRequest defines the payload for the flashcard generation endpoint.
type GenerateRequest struct {
	Text string `json:"text"`
}

// FlashcardPayload is one question/answer pair submitted for saving.
type FlashcardPayload struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CreateFlashcardsRequest defines the payload for the bulk save endpoint.
type CreateFlashcardsRequest struct {
	Flashcards []FlashcardPayload `json:"flashcards"`
}

// MessageResponse carries a single human-readable status message.
type MessageResponse struct {
	Message string `json:"message"`
}
