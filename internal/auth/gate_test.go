package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akary-web/blog-api/config"
	"github.com/akary-web/blog-api/internal/auth"
)

const testSecret = "super-secret-signing-key"

func signToken(t *testing.T, secret string, expiresIn time.Duration) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthorize_EmptyToken(t *testing.T) {
	gate := auth.NewClient(config.Config{SupabaseJWTSecret: testSecret})

	_, err := gate.Authorize(context.Background(), "")

	var authErr *auth.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.True(t, auth.IsAuthError(err))
}

func TestAuthorize_Local(t *testing.T) {
	gate := auth.NewClient(config.Config{SupabaseJWTSecret: testSecret})
	ctx := context.Background()

	t.Run("valid token resolves the subject", func(t *testing.T) {
		user, err := gate.Authorize(ctx, signToken(t, testSecret, time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		_, err := gate.Authorize(ctx, signToken(t, testSecret, -time.Hour))
		assert.True(t, auth.IsAuthError(err))
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		_, err := gate.Authorize(ctx, signToken(t, "wrong-key", time.Hour))
		assert.True(t, auth.IsAuthError(err))
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := gate.Authorize(ctx, "not-a-jwt")
		assert.True(t, auth.IsAuthError(err))
	})
}

func TestAuthorize_Remote(t *testing.T) {
	ctx := context.Background()

	t.Run("valid session resolves the user", func(t *testing.T) {
		var gotAuth, gotAPIKey string
		provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotAPIKey = r.Header.Get("apikey")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": "user-456", "email": "admin@example.com"}`))
		}))
		defer provider.Close()

		gate := auth.NewClient(config.Config{
			SupabaseURL:     provider.URL,
			SupabaseAnonKey: "anon-key",
		})

		user, err := gate.Authorize(ctx, "session-token")
		require.NoError(t, err)
		assert.Equal(t, "user-456", user.ID)
		assert.Equal(t, "admin@example.com", user.Email)
		assert.Equal(t, "Bearer session-token", gotAuth)
		assert.Equal(t, "anon-key", gotAPIKey)
	})

	t.Run("provider rejection carries the provider message", func(t *testing.T) {
		provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"msg": "invalid JWT"}`))
		}))
		defer provider.Close()

		gate := auth.NewClient(config.Config{SupabaseURL: provider.URL})

		_, err := gate.Authorize(ctx, "stale-token")
		var authErr *auth.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "invalid JWT", authErr.Message)
	})

	t.Run("unusable provider URL is an auth failure", func(t *testing.T) {
		gate := auth.NewClient(config.Config{SupabaseURL: "http://bad host"})

		_, err := gate.Authorize(ctx, "any-token")
		assert.True(t, auth.IsAuthError(err))
	})

	t.Run("unreachable provider is an auth failure", func(t *testing.T) {
		gate := auth.NewClient(config.Config{SupabaseURL: "http://127.0.0.1:1"})

		_, err := gate.Authorize(ctx, "any-token")
		assert.True(t, auth.IsAuthError(err))
	})
}
