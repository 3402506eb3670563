package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/estudai/api/internal/api/shared"
	"github.com/estudai/api/internal/generation"
	"github.com/estudai/api/internal/platform/logger"
)

// GenerateHandler handles AI flashcard generation requests.
type GenerateHandler struct {
	generator generation.Generator
}

// NewGenerateHandler creates a new GenerateHandler with the given dependencies.
func NewGenerateHandler(generator generation.Generator) *GenerateHandler {
	return &GenerateHandler{
		generator: generator,
	}
}

// Generate handles POST /api/generate-flashcards. It sends the source
// text to the model and returns the extracted question/answer pairs as
// a bare JSON array. Generated cards are not persisted; saving is a
// separate, authenticated call.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Nenhum texto foi fornecido.")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Nenhum texto foi fornecido.")
		return
	}

	cards, err := h.generator.GenerateCards(r.Context(), req.Text)
	if err != nil {
		log := logger.FromContext(r.Context())

		if errors.Is(err, generation.ErrEmptySourceText) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Nenhum texto foi fornecido.")
			return
		}

		if errors.Is(err, generation.ErrMalformedResponse) {
			log.Error("model returned unusable response", "error", err)
			shared.RespondWithErrorDetails(w, r, http.StatusInternalServerError,
				"Erro ao processar a resposta da IA. Tente novamente ou ajuste o texto.",
				"A IA não retornou um JSON válido ou no formato esperado.")
			return
		}

		log.Error("flashcard generation failed", "error", err)
		shared.RespondWithErrorDetails(w, r, http.StatusInternalServerError,
			"Ocorreu um erro ao gerar os flashcards. Por favor, tente novamente.",
			"Falha na chamada ao serviço de geração.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cards)
}
