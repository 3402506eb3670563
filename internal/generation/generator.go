// Package generation defines the boundary between the application core
// and external text-generation services, following the hexagonal
// architecture pattern.
package generation

import "context"

// CardDraft is a question/answer pair produced by a generator. It is not
// yet owned by anyone; the API layer turns accepted drafts into
// domain.Flashcard values tagged with the caller's user ID.
type CardDraft struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Generator defines the interface for producing flashcard drafts from
// free-form source text.
type Generator interface {
	// GenerateCards builds a prompt around sourceText, calls the
	// generation backend once, and returns the extracted drafts.
	//
	// Returns ErrEmptySourceText when sourceText is empty, and
	// ErrMalformedResponse when the backend's completion cannot be
	// parsed into the expected shape. No retry is attempted; a single
	// failure surfaces to the caller.
	GenerateCards(ctx context.Context, sourceText string) ([]CardDraft, error)
}
