package api

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/estudai/api/internal/domain"
	"github.com/estudai/api/internal/generation"
	"github.com/estudai/api/internal/service/auth"
	"github.com/estudai/api/internal/store"
)

// In-memory test doubles for the stores and services the handlers
// depend on. They reproduce the sentinel-error contracts of the real
// implementations so handler error mapping can be exercised directly.

type stubUserStore struct {
	mu      sync.Mutex
	byEmail map[string]*domain.User
	failAll bool
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{byEmail: make(map[string]*domain.User)}
}

func (s *stubUserStore) Create(ctx context.Context, user *domain.User) error {
	if s.failAll {
		return errors.New("store unavailable")
	}

	if err := user.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[user.Email]; exists {
		return store.ErrEmailExists
	}

	stored := *user
	stored.HashedPassword = "hashed:" + user.Password
	stored.Password = ""
	s.byEmail[user.Email] = &stored
	*user = stored
	return nil
}

func (s *stubUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byEmail {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.failAll {
		return nil, errors.New("store unavailable")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.byEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, store.ErrUserNotFound
}

type stubFlashcardStore struct {
	mu      sync.Mutex
	cards   map[uuid.UUID]*domain.Flashcard
	failAll bool
}

func newStubFlashcardStore() *stubFlashcardStore {
	return &stubFlashcardStore{cards: make(map[uuid.UUID]*domain.Flashcard)}
}

func (s *stubFlashcardStore) CreateMany(
	ctx context.Context,
	cards []*domain.Flashcard,
) (int64, error) {
	if s.failAll {
		return 0, errors.New("store unavailable")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, card := range cards {
		if _, exists := s.cards[card.ID]; exists {
			continue
		}
		copied := *card
		s.cards[card.ID] = &copied
		count++
	}
	return count, nil
}

func (s *stubFlashcardStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Flashcard, error) {
	if s.failAll {
		return nil, errors.New("store unavailable")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*domain.Flashcard, 0)
	for _, card := range s.cards {
		if card.UserID == userID {
			copied := *card
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *stubFlashcardStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Flashcard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if card, ok := s.cards[id]; ok {
		copied := *card
		return &copied, nil
	}
	return nil, store.ErrFlashcardNotFound
}

func (s *stubFlashcardStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cards[id]; !ok {
		return store.ErrFlashcardNotFound
	}
	delete(s.cards, id)
	return nil
}

type stubJWTService struct {
	token       string
	generateErr error
	claims      *auth.Claims
	validateErr error
}

func (s *stubJWTService) GenerateToken(
	ctx context.Context,
	userID uuid.UUID,
	email string,
) (string, error) {
	if s.generateErr != nil {
		return "", s.generateErr
	}
	return s.token, nil
}

func (s *stubJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return s.claims, nil
}

type stubPasswordVerifier struct {
	shouldSucceed bool
}

func (v *stubPasswordVerifier) Compare(hashedPassword, password string) error {
	if v.shouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}

type stubGenerator struct {
	cards []generation.CardDraft
	err   error
}

func (g *stubGenerator) GenerateCards(
	ctx context.Context,
	sourceText string,
) ([]generation.CardDraft, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.cards, nil
}
