package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"text/template"

	"google.golang.org/genai"

	"github.com/estudai/api/internal/config"
	"github.com/estudai/api/internal/generation"
)

// promptTemplateText is the fixed prompt built around the caller's text.
// It instructs the model to return strictly a JSON array of 3-7 objects
// with "question" and "answer" keys; the source text is embedded verbatim.
const promptTemplateText = `Gere uma lista de flashcards (mínimo 3, máximo 7) em formato JSON, com as chaves "question" e "answer", com base no seguinte texto. Certifique-se de que a saída seja um JSON válido e nada além do JSON.

Texto: "{{.SourceText}}"

Exemplo de formato JSON esperado:
[
  {"question": "Qual é a capital do Brasil?", "answer": "Brasília"},
  {"question": "Quem descobriu o Brasil?", "answer": "Pedro Álvares Cabral"}
]
`

// promptData represents the data passed to the prompt template.
type promptData struct {
	SourceText string
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	logger         *slog.Logger
	promptTemplate *template.Template
	client         *genai.Client
	model          string
}

// Ensure GeminiGenerator implements generation.Generator
var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGenerator creates a Gemini-backed generator from the LLM
// configuration. It validates the configuration and initializes the API
// client; the API key's absence is caught earlier by config validation,
// but is re-checked here so the constructor is safe on its own.
func NewGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	promptTemplate, err := template.New("flashcards").Parse(promptTemplateText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger:         logger,
		promptTemplate: promptTemplate,
		client:         client,
		model:          cfg.ModelName,
	}, nil
}

// GenerateCards implements generation.Generator. It makes a single call
// to the Gemini API with no retry and no streaming; any failure is
// surfaced directly to the caller.
func (g *GeminiGenerator) GenerateCards(
	ctx context.Context,
	sourceText string,
) ([]generation.CardDraft, error) {
	if sourceText == "" {
		return nil, generation.ErrEmptySourceText
	}

	prompt, err := g.createPrompt(ctx, sourceText)
	if err != nil {
		return nil, err
	}

	g.logger.InfoContext(ctx, "calling Gemini API",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed", "error", err)
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: no content generated", generation.ErrMalformedResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: completion stopped by safety filters",
			generation.ErrContentBlocked)
	}

	raw := resp.Text()
	g.logger.DebugContext(ctx, "received Gemini completion",
		"completion_length", len(raw))

	cards, err := ExtractCards(raw)
	if err != nil {
		g.logger.ErrorContext(ctx, "failed to extract cards from completion",
			"error", err,
			"completion_length", len(raw))
		return nil, err
	}

	g.logger.InfoContext(ctx, "generated flashcard drafts", "card_count", len(cards))
	return cards, nil
}

// createPrompt executes the prompt template with the source text.
func (g *GeminiGenerator) createPrompt(ctx context.Context, sourceText string) (string, error) {
	var promptBuffer bytes.Buffer
	if err := g.promptTemplate.Execute(&promptBuffer, promptData{SourceText: sourceText}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	g.logger.DebugContext(ctx, "prompt generated from template",
		"source_length", len(sourceText),
		"prompt_length", promptBuffer.Len())

	return promptBuffer.String(), nil
}
