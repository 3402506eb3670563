package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estudai/api/internal/config"
	"github.com/estudai/api/internal/domain"
	"github.com/estudai/api/internal/generation"
	"github.com/estudai/api/internal/service/auth"
	"github.com/estudai/api/internal/store"
)

// memoryUserStore and memoryFlashcardStore back the router tests without
// a database, honoring the same sentinel-error contracts as the postgres
// implementations.

type memoryUserStore struct {
	users map[string]*domain.User
}

func (s *memoryUserStore) Create(ctx context.Context, user *domain.User) error {
	if _, ok := s.users[user.Email]; ok {
		return store.ErrEmailExists
	}
	stored := *user
	stored.HashedPassword = "hash"
	stored.Password = ""
	s.users[user.Email] = &stored
	return nil
}

func (s *memoryUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *memoryUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, store.ErrUserNotFound
}

type memoryFlashcardStore struct {
	cards map[uuid.UUID]*domain.Flashcard
}

func (s *memoryFlashcardStore) CreateMany(
	ctx context.Context,
	cards []*domain.Flashcard,
) (int64, error) {
	var count int64
	for _, card := range cards {
		if _, ok := s.cards[card.ID]; ok {
			continue
		}
		s.cards[card.ID] = card
		count++
	}
	return count, nil
}

func (s *memoryFlashcardStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Flashcard, error) {
	result := make([]*domain.Flashcard, 0)
	for _, card := range s.cards {
		if card.UserID == userID {
			result = append(result, card)
		}
	}
	return result, nil
}

func (s *memoryFlashcardStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Flashcard, error) {
	if card, ok := s.cards[id]; ok {
		return card, nil
	}
	return nil, store.ErrFlashcardNotFound
}

func (s *memoryFlashcardStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.cards[id]; !ok {
		return store.ErrFlashcardNotFound
	}
	delete(s.cards, id)
	return nil
}

type fixedGenerator struct {
	cards []generation.CardDraft
}

func (g *fixedGenerator) GenerateCards(
	ctx context.Context,
	sourceText string,
) ([]generation.CardDraft, error) {
	return g.cards, nil
}

type alwaysOKVerifier struct{}

func (alwaysOKVerifier) Compare(hashedPassword, password string) error { return nil }

func newTestApplication(t *testing.T) *application {
	t.Helper()

	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 5000, LogLevel: "error"},
		},
		logger:         slog.Default(),
		userStore:      &memoryUserStore{users: make(map[string]*domain.User)},
		flashcardStore: &memoryFlashcardStore{cards: make(map[uuid.UUID]*domain.Flashcard)},
		jwtService: auth.NewTestJWTService(
			"router-test-secret-32-characters!",
			time.Hour,
			func() time.Time { return time.Now().UTC() },
		),
		passwordVerifier: alwaysOKVerifier{},
		generator: &fixedGenerator{cards: []generation.CardDraft{
			{Question: "Qual é a capital do Brasil?", Answer: "Brasília"},
		}},
	}
}

func TestRootAndHealthEndpoints(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	assert.Equal(t, "Servidor do Assistente de Estudo Inteligente está rodando!", string(body))

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/flashcards"},
		{http.MethodGet, "/api/flashcards"},
		{http.MethodDelete, "/api/flashcards/" + uuid.NewString()},
	}

	for _, p := range paths {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(p.method, p.path, nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "%s %s", p.method, p.path)
	}
}

// Exercises the full register → save → list → delete flow through the
// real router, middleware and handlers.
func TestFlashcardLifecycleThroughRouter(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	do := func(method, path, token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		return recorder
	}

	// Register
	recorder := do(http.MethodPost, "/api/auth/register", "",
		`{"email":"aluno@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var registered struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		UserID  string `json:"userId"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&registered))
	assert.Equal(t, "Usuário registrado com sucesso!", registered.Message)
	require.NotEmpty(t, registered.Token)

	// Generate is public
	recorder = do(http.MethodPost, "/api/generate-flashcards", "",
		`{"text":"O Brasil foi descoberto em 1500."}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	// Save
	recorder = do(http.MethodPost, "/api/flashcards", registered.Token,
		`{"flashcards":[{"question":"Qual é a capital do Brasil?","answer":"Brasília"}]}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	// List
	recorder = do(http.MethodGet, "/api/flashcards", registered.Token, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var cards []domain.Flashcard
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&cards))
	require.Len(t, cards, 1)
	assert.Equal(t, registered.UserID, cards[0].UserID.String())

	// Delete
	recorder = do(http.MethodDelete, "/api/flashcards/"+cards[0].ID.String(), registered.Token, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	// List again is empty
	recorder = do(http.MethodGet, "/api/flashcards", registered.Token, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())
}
