package api

import (
	"errors"
	"net/http"

	"github.com/estudai/api/internal/generation"
	"github.com/estudai/api/internal/service/auth"
	"github.com/estudai/api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrFlashcardNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, generation.ErrEmptySourceText):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly message for the
// given error without exposing internal details to the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Ocorreu um erro inesperado."
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Token inválido ou expirado."

	case errors.Is(err, store.ErrUserNotFound):
		return "Usuário não encontrado."

	case errors.Is(err, store.ErrFlashcardNotFound):
		return "Flashcard não encontrado."

	case errors.Is(err, store.ErrEmailExists):
		return "Este email já está registrado."

	case errors.Is(err, store.ErrInvalidEntity):
		return "Dados inválidos."

	default:
		return "Ocorreu um erro inesperado."
	}
}
