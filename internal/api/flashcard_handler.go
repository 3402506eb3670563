package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/estudai/api/internal/api/shared"
	"github.com/estudai/api/internal/domain"
	"github.com/estudai/api/internal/platform/logger"
	"github.com/estudai/api/internal/store"
)

// FlashcardHandler handles flashcard persistence API requests.
type FlashcardHandler struct {
	flashcardStore store.FlashcardStore
}

// NewFlashcardHandler creates a new FlashcardHandler with the given dependencies.
func NewFlashcardHandler(flashcardStore store.FlashcardStore) *FlashcardHandler {
	return &FlashcardHandler{
		flashcardStore: flashcardStore,
	}
}

// Create handles POST /api/flashcards. It saves the valid question/answer
// pairs from the request for the authenticated user, silently skipping
// entries with a blank question or answer.
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Token não fornecido.")
		return
	}

	var req CreateFlashcardsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Nenhum flashcard válido foi fornecido para salvar.")
		return
	}

	cards := make([]*domain.Flashcard, 0, len(req.Flashcards))
	for _, payload := range req.Flashcards {
		question := strings.TrimSpace(payload.Question)
		answer := strings.TrimSpace(payload.Answer)
		if question == "" || answer == "" {
			continue
		}

		card, err := domain.NewFlashcard(userID, question, answer)
		if err != nil {
			continue
		}
		cards = append(cards, card)
	}

	if len(cards) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Nenhum flashcard válido foi fornecido para salvar.")
		return
	}

	count, err := h.flashcardStore.CreateMany(r.Context(), cards)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Ocorreu um erro ao salvar os flashcards.", err)
		return
	}

	log := logger.FromContext(r.Context())
	log.Info("flashcards saved", "user_id", userID, "count", count)

	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{
		Message: fmt.Sprintf("%d flashcard(s) salvo(s) com sucesso!", count),
	})
}

// List handles GET /api/flashcards, returning the authenticated user's
// flashcards newest-first.
func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Token não fornecido.")
		return
	}

	cards, err := h.flashcardStore.ListByUser(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Ocorreu um erro ao buscar os flashcards.", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cards)
}

// Delete handles DELETE /api/flashcards/{id}. Only the owner of a
// flashcard may delete it.
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Token não fornecido.")
		return
	}

	cardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Flashcard não encontrado.")
		return
	}

	card, err := h.flashcardStore.GetByID(r.Context(), cardID)
	if err != nil {
		if errors.Is(err, store.ErrFlashcardNotFound) {
			shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Ocorreu um erro ao deletar o flashcard.", err)
		return
	}

	if card.UserID != userID {
		shared.RespondWithError(w, r, http.StatusForbidden,
			"Você não tem permissão para deletar este flashcard.")
		return
	}

	if err := h.flashcardStore.Delete(r.Context(), cardID); err != nil {
		// A concurrent delete surfaces as not found.
		if errors.Is(err, store.ErrFlashcardNotFound) {
			shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Ocorreu um erro ao deletar o flashcard.", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Flashcard deletado com sucesso!",
	})
}
