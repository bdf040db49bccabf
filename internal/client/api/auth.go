package api

import (
	"context"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
	"github.com/mycomarket/mycomarket-go/internal/client/session"
)

// LoginRequest carries the credential pair for /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates a new account; the server logs it in immediately.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// authPayload is what /auth/login and /auth/register return.
type authPayload struct {
	models.Session
	User models.UserProfile `json:"user"`
}

func (p *authPayload) pair() (*models.Session, *models.UserProfile) {
	sess := p.Session
	if sess.ExpiresAt.IsZero() {
		sess.ExpiresAt = session.ExpiryFromToken(sess.AccessToken)
	}
	return &sess, &p.User
}

// Login exchanges credentials for a session/profile pair. Persisting the
// pair is the caller's job (see services.AuthService).
func (c *Client) Login(ctx context.Context, req LoginRequest) (*models.Session, *models.UserProfile, error) {
	var payload authPayload
	if err := c.post(ctx, "/auth/login", req, &payload); err != nil {
		return nil, nil, err
	}
	s, p := payload.pair()
	return s, p, nil
}

// Register creates an account and returns the resulting session/profile pair.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.Session, *models.UserProfile, error) {
	var payload authPayload
	if err := c.post(ctx, "/auth/register", req, &payload); err != nil {
		return nil, nil, err
	}
	s, p := payload.pair()
	return s, p, nil
}

// Logout revokes the current refresh token server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil)
}
