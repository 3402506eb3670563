package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Flashcard validation errors
var (
	ErrFlashcardIDEmpty       = errors.New("flashcard ID cannot be empty")
	ErrFlashcardUserIDEmpty   = errors.New("flashcard user ID cannot be empty")
	ErrFlashcardQuestionEmpty = errors.New("flashcard question cannot be empty")
	ErrFlashcardAnswerEmpty   = errors.New("flashcard answer cannot be empty")
)

// Flashcard is a question/answer pair owned by exactly one user.
// Cards are created in bulk, listed newest-first, and deleted
// individually; they are never updated in place.
type Flashcard struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewFlashcard creates a new Flashcard owned by userID.
// It generates a new UUID and sets the creation timestamp.
// Returns an error if validation fails.
func NewFlashcard(userID uuid.UUID, question, answer string) (*Flashcard, error) {
	card := &Flashcard{
		ID:        uuid.New(),
		UserID:    userID,
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Flashcard has valid data.
func (f *Flashcard) Validate() error {
	if f.ID == uuid.Nil {
		return ErrFlashcardIDEmpty
	}

	if f.UserID == uuid.Nil {
		return ErrFlashcardUserIDEmpty
	}

	if f.Question == "" {
		return ErrFlashcardQuestionEmpty
	}

	if f.Answer == "" {
		return ErrFlashcardAnswerEmpty
	}

	return nil
}
