// Package services contains the application services for the MycoMarket
// client: they bind the API client, the query cache, and the session
// manager, add client-side validation, and own the cache-invalidation
// rules for every mutation.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mycomarket/mycomarket-go/internal/client/api"
	"github.com/mycomarket/mycomarket-go/internal/client/models"
	"github.com/mycomarket/mycomarket-go/internal/client/query"
	"github.com/mycomarket/mycomarket-go/internal/client/session"
	"github.com/mycomarket/mycomarket-go/internal/common"
)

// AuthAPI is the slice of the API client the auth service needs.
type AuthAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*models.Session, *models.UserProfile, error)
	Register(ctx context.Context, req api.RegisterRequest) (*models.Session, *models.UserProfile, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.UserProfile, error)
	UpdateMe(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error)
}

// RegisterForm is the user-facing registration input, validated before any
// request is sent.
type RegisterForm struct {
	FullName string
	Email    string
	Phone    string
	Password string
}

// AuthService drives login, registration, and session teardown for the CLI.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.UserProfile, error)
	Register(ctx context.Context, form RegisterForm) (*models.UserProfile, error)
	Logout(ctx context.Context) error
	CurrentUser() *models.UserProfile
	RefreshProfile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error)
}

type authService struct {
	api      AuthAPI
	sessions *session.Manager
	cache    *query.Cache
}

// NewAuthService constructs an AuthService over the given collaborators.
func NewAuthService(a AuthAPI, sessions *session.Manager, cache *query.Cache) AuthService {
	return &authService{api: a, sessions: sessions, cache: cache}
}

// Login authenticates and persists the session/profile pair.
func (s *authService) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	sess, profile, err := s.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := s.sessions.Set(sess, profile); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return profile, nil
}

// Register validates the form, creates the account, and logs it in.
func (s *authService) Register(ctx context.Context, form RegisterForm) (*models.UserProfile, error) {
	if err := validateRegisterForm(form); err != nil {
		return nil, err
	}

	sess, profile, err := s.api.Register(ctx, api.RegisterRequest{
		FullName: strings.TrimSpace(form.FullName),
		Email:    strings.TrimSpace(form.Email),
		Phone:    strings.TrimSpace(form.Phone),
		Password: form.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if err := s.sessions.Set(sess, profile); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return profile, nil
}

// Logout revokes the session server-side when possible and always clears
// local state: tokens, profile, and any cached reads.
func (s *authService) Logout(ctx context.Context) error {
	// Server-side revoke is best effort; local teardown must happen
	// regardless of its outcome.
	_ = s.api.Logout(ctx)

	if err := s.sessions.Clear(); err != nil {
		return err
	}
	s.cache.Clear()
	return nil
}

// CurrentUser returns the cached profile, or nil when logged out.
func (s *authService) CurrentUser() *models.UserProfile {
	return s.sessions.Profile()
}

// RefreshProfile re-fetches /users/me and updates the persisted copy.
func (s *authService) RefreshProfile(ctx context.Context) (*models.UserProfile, error) {
	profile, err := s.api.Me(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SetProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateProfile edits the profile and keeps the persisted copy in sync.
func (s *authService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.api.UpdateMe(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SetProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func validateRegisterForm(form RegisterForm) error {
	if len(strings.TrimSpace(form.FullName)) < 2 {
		return fmt.Errorf("%w: full name is required", common.ErrValidation)
	}
	email := strings.TrimSpace(form.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", common.ErrValidation)
	}
	if len(form.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", common.ErrValidation)
	}
	return nil
}
