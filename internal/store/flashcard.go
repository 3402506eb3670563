package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/estudai/api/internal/domain"
)

// FlashcardStore defines the interface for flashcard data persistence.
type FlashcardStore interface {
	// CreateMany saves multiple flashcards in a single statement and
	// returns the number of rows actually inserted. Rows conflicting
	// with an existing unique key are skipped rather than duplicated.
	// All cards must be valid according to domain validation rules.
	CreateMany(ctx context.Context, cards []*domain.Flashcard) (int64, error)

	// ListByUser retrieves all flashcards owned by userID, ordered by
	// creation time descending. Returns an empty slice when the user
	// has no flashcards.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Flashcard, error)

	// GetByID retrieves a flashcard by its unique ID regardless of owner.
	// Returns ErrFlashcardNotFound if the flashcard does not exist.
	// Ownership checks are the caller's responsibility; the caller must
	// compare the returned UserID against the requesting user before
	// exposing or deleting the card.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error)

	// Delete removes a flashcard by its ID.
	// Returns ErrFlashcardNotFound if the flashcard does not exist,
	// which also covers a concurrent delete of the same card.
	Delete(ctx context.Context, id uuid.UUID) error
}
