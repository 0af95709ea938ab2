package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akary-web/blog-api/config"
)

// AuthError is returned for any token the provider will not vouch for:
// missing, malformed, expired, or revoked. The message is the provider's
// own, surfaced verbatim to the admin UI.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// User identifies the session owner the provider resolved from a token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Client is the auth gate. Every admin request re-validates its token here;
// nothing is cached and nothing is retried.
//
// Two modes: with a JWT secret configured the access token is verified
// locally (HS256, the provider's signing scheme); otherwise the gate asks
// the provider's user endpoint to resolve the session over HTTP.
type Client struct {
	baseURL    string
	anonKey    string
	jwtSecret  string
	httpClient *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.SupabaseURL, "/"),
		anonKey:    cfg.SupabaseAnonKey,
		jwtSecret:  cfg.SupabaseJWTSecret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Authorize(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, &AuthError{Message: "missing authorization token"}
	}

	if c.jwtSecret != "" {
		return c.authorizeLocal(token)
	}
	return c.authorizeRemote(ctx, token)
}

func (c *Client) authorizeLocal(token string) (*User, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(c.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, &AuthError{Message: "invalid or expired token"}
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, &AuthError{Message: "token has no subject"}
	}

	user := &User{ID: subject}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	return user, nil
}

func (c *Client) authorizeRemote(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, &AuthError{Message: "auth provider request failed: " + err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &AuthError{Message: "auth provider unreachable: " + err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var providerErr struct {
			Message          string `json:"msg"`
			ErrorDescription string `json:"error_description"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&providerErr); err == nil {
			if providerErr.Message != "" {
				return nil, &AuthError{Message: providerErr.Message}
			}
			if providerErr.ErrorDescription != "" {
				return nil, &AuthError{Message: providerErr.ErrorDescription}
			}
		}
		return nil, &AuthError{Message: fmt.Sprintf("auth provider rejected token (status %d)", resp.StatusCode)}
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, &AuthError{Message: "malformed auth provider response"}
	}
	if user.ID == "" {
		return nil, &AuthError{Message: "auth provider returned no user"}
	}
	return &user, nil
}

// IsAuthError reports whether err came from the gate rather than from the
// stores or the database.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}
