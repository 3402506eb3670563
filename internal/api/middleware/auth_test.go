package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estudai/api/internal/service/auth"
)

const testSecret = "test-secret-key-thats-32-chars-long"

func protectedRouter(t *testing.T, jwtService auth.JWTService) http.Handler {
	t.Helper()

	authMiddleware := NewAuthMiddleware(jwtService)
	return authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserID(r)
		require.True(t, ok, "authenticated handler must see a user ID")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"userId": userID.String()})
	}))
}

func errorBody(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	return resp.Error
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	jwtService := auth.NewTestJWTService(testSecret, time.Hour, func() time.Time { return now })

	userID := uuid.New()
	token, err := jwtService.GenerateToken(context.Background(), userID, "aluno@example.com")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantError  string
	}{
		{
			name:       "valid bearer token",
			authHeader: "Bearer " + token,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Token não fornecido.",
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic " + token,
			wantStatus: http.StatusUnauthorized,
			wantError:  "Token não fornecido.",
		},
		{
			name:       "bearer with empty token",
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Token não fornecido.",
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.jwt",
			wantStatus: http.StatusForbidden,
			wantError:  "Token inválido ou expirado.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := protectedRouter(t, jwtService)
			req := httptest.NewRequest(http.MethodGet, "/api/flashcards", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorBody(t, recorder))
			}
		})
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	t.Parallel()

	issuedAt := time.Now().UTC().Add(-2 * time.Hour)
	issuer := auth.NewTestJWTService(testSecret, time.Hour, func() time.Time { return issuedAt })
	token, err := issuer.GenerateToken(context.Background(), uuid.New(), "aluno@example.com")
	require.NoError(t, err)

	// Validate with a service whose clock is past the expiry.
	validator := auth.NewTestJWTService(testSecret, time.Hour, func() time.Time { return time.Now().UTC() })
	router := protectedRouter(t, validator)

	req := httptest.NewRequest(http.MethodGet, "/api/flashcards", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, "Token inválido ou expirado.", errorBody(t, recorder))
}

func TestAuthenticateRejectsWrongKey(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	issuer := auth.NewTestJWTService("another-32-char-secret-for-tests!", time.Hour, func() time.Time { return now })
	token, err := issuer.GenerateToken(context.Background(), uuid.New(), "aluno@example.com")
	require.NoError(t, err)

	validator := auth.NewTestJWTService(testSecret, time.Hour, func() time.Time { return now })
	router := protectedRouter(t, validator)

	req := httptest.NewRequest(http.MethodGet, "/api/flashcards", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestAuthenticatePropagatesUserID(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	jwtService := auth.NewTestJWTService(testSecret, time.Hour, func() time.Time { return now })

	userID := uuid.New()
	token, err := jwtService.GenerateToken(context.Background(), userID, "aluno@example.com")
	require.NoError(t, err)

	router := protectedRouter(t, jwtService)
	req := httptest.NewRequest(http.MethodGet, "/api/flashcards", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, userID.String(), resp["userId"])
}
