package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/estudai/api/internal/domain"
	"github.com/estudai/api/internal/platform/logger"
	"github.com/estudai/api/internal/store"
)

// PostgresFlashcardStore implements the store.FlashcardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFlashcardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFlashcardStore creates a new PostgreSQL implementation of
// the FlashcardStore interface. The connection must be initialized and
// managed by the caller. If logger is nil, a default logger is used.
func NewPostgresFlashcardStore(db store.DBTX, logger *slog.Logger) *PostgresFlashcardStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFlashcardStore{
		db:     db,
		logger: logger.With(slog.String("component", "flashcard_store")),
	}
}

// Ensure PostgresFlashcardStore implements store.FlashcardStore interface
var _ store.FlashcardStore = (*PostgresFlashcardStore)(nil)

// CreateMany implements store.FlashcardStore.CreateMany
// It inserts all cards in a single multi-row statement and returns the
// number of rows inserted. ON CONFLICT (id) DO NOTHING skips duplicate
// rows; since IDs are freshly generated UUIDs this never fires today,
// matching the upstream skip-duplicates behavior that had no unique key
// to act on. Adding a uniqueness constraint later changes nothing here.
func (s *PostgresFlashcardStore) CreateMany(
	ctx context.Context,
	cards []*domain.Flashcard,
) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(cards) == 0 {
		return 0, nil
	}

	for _, card := range cards {
		if err := card.Validate(); err != nil {
			log.Warn("flashcard validation failed during bulk create",
				slog.String("error", err.Error()),
				slog.String("flashcard_id", card.ID.String()))
			return 0, err
		}
	}

	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO flashcards (id, user_id, question, answer, created_at)
		VALUES `)

	args := make([]any, 0, len(cards)*5)
	for i, card := range cards {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 5
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5)
		args = append(args, card.ID, card.UserID, card.Question, card.Answer, card.CreatedAt)
	}

	sb.WriteString(" ON CONFLICT (id) DO NOTHING")

	result, err := s.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during flashcard creation",
				slog.String("error", err.Error()),
				slog.String("user_id", cards[0].UserID.String()))
			return 0, fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, cards[0].UserID)
		}

		log.Error("failed to create flashcards",
			slog.String("error", err.Error()),
			slog.Int("card_count", len(cards)))
		return 0, MapError(err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()))
		return 0, err
	}

	log.Info("flashcards created successfully",
		slog.Int64("inserted", inserted),
		slog.String("user_id", cards[0].UserID.String()))
	return inserted, nil
}

// ListByUser implements store.FlashcardStore.ListByUser
// It returns all flashcards owned by userID, newest first.
func (s *PostgresFlashcardStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, question, answer, created_at
		FROM flashcards
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query flashcards by user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var cards []*domain.Flashcard
	for rows.Next() {
		var card domain.Flashcard
		err := rows.Scan(
			&card.ID,
			&card.UserID,
			&card.Question,
			&card.Answer,
			&card.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan flashcard row",
				slog.String("error", err.Error()))
			return nil, err
		}
		cards = append(cards, &card)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	// Callers serialize this straight to JSON; an empty list must be [].
	if cards == nil {
		cards = []*domain.Flashcard{}
	}

	log.Debug("listed flashcards by user",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(cards)))
	return cards, nil
}

// GetByID implements store.FlashcardStore.GetByID
// Returns store.ErrFlashcardNotFound if the flashcard does not exist.
func (s *PostgresFlashcardStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, question, answer, created_at
		FROM flashcards
		WHERE id = $1
	`

	var card domain.Flashcard
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&card.ID,
		&card.UserID,
		&card.Question,
		&card.Answer,
		&card.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("flashcard not found", slog.String("flashcard_id", id.String()))
			return nil, store.ErrFlashcardNotFound
		}
		log.Error("failed to get flashcard by ID",
			slog.String("error", err.Error()),
			slog.String("flashcard_id", id.String()))
		return nil, MapError(err)
	}

	return &card, nil
}

// Delete implements store.FlashcardStore.Delete
// Returns store.ErrFlashcardNotFound if no row was deleted.
func (s *PostgresFlashcardStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM flashcards
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete flashcard",
			slog.String("error", err.Error()),
			slog.String("flashcard_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "flashcard"); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("flashcard not found for delete",
				slog.String("flashcard_id", id.String()))
			return store.ErrFlashcardNotFound
		}
		return err
	}

	log.Info("flashcard deleted successfully",
		slog.String("flashcard_id", id.String()))
	return nil
}
