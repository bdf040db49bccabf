package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycomarket/mycomarket-go/internal/client/api"
	"github.com/mycomarket/mycomarket-go/internal/client/models"
	"github.com/mycomarket/mycomarket-go/internal/client/query"
	"github.com/mycomarket/mycomarket-go/internal/client/session"
	"github.com/mycomarket/mycomarket-go/internal/common"
)

type fakeAuthAPI struct {
	loginCalls    int
	registerCalls int
	logoutCalls   int
	logoutErr     error
	failLogin     error

	lastLogin    api.LoginRequest
	lastRegister api.RegisterRequest

	profile models.UserProfile
}

func (f *fakeAuthAPI) pair() (*models.Session, *models.UserProfile) {
	p := f.profile
	return &models.Session{AccessToken: "A1", RefreshToken: "R1", ExpiresAt: time.Now().Add(time.Hour)}, &p
}

func (f *fakeAuthAPI) Login(_ context.Context, req api.LoginRequest) (*models.Session, *models.UserProfile, error) {
	f.loginCalls++
	f.lastLogin = req
	if f.failLogin != nil {
		return nil, nil, f.failLogin
	}
	s, p := f.pair()
	return s, p, nil
}

func (f *fakeAuthAPI) Register(_ context.Context, req api.RegisterRequest) (*models.Session, *models.UserProfile, error) {
	f.registerCalls++
	f.lastRegister = req
	s, p := f.pair()
	return s, p, nil
}

func (f *fakeAuthAPI) Logout(context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAuthAPI) Me(context.Context) (*models.UserProfile, error) {
	p := f.profile
	return &p, nil
}

func (f *fakeAuthAPI) UpdateMe(_ context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	p := f.profile
	if req.FullName != "" {
		p.FullName = req.FullName
	}
	return &p, nil
}

func newAuthFixture(t *testing.T) (*fakeAuthAPI, *session.Manager, *query.Cache, AuthService) {
	t.Helper()
	fake := &fakeAuthAPI{profile: models.UserProfile{ID: "u-1", FullName: "Mara Boletova", Email: "mara@example.com"}}
	mgr := session.NewManager(session.NewFileStore(t.TempDir()))
	cache := query.NewCache(time.Minute)
	t.Cleanup(cache.Stop)
	return fake, mgr, cache, NewAuthService(fake, mgr, cache)
}

func TestAuthService_LoginPersistsPair(t *testing.T) {
	fake, mgr, _, svc := newAuthFixture(t)

	profile, err := svc.Login(context.Background(), "mara@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "u-1", profile.ID)
	assert.Equal(t, "mara@example.com", fake.lastLogin.Email)

	require.NotNil(t, mgr.Current())
	assert.Equal(t, "A1", mgr.Current().AccessToken)
	assert.Equal(t, "u-1", mgr.Profile().ID)
}

func TestAuthService_LoginValidation(t *testing.T) {
	fake, _, _, svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "", "secret123")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Login(context.Background(), "mara@example.com", "")
	assert.ErrorIs(t, err, common.ErrValidation)

	assert.Zero(t, fake.loginCalls, "no request leaves the client on invalid input")
}

func TestAuthService_LoginFailureDoesNotPersist(t *testing.T) {
	fake, mgr, _, svc := newAuthFixture(t)
	fake.failLogin = errors.New("bad credentials")

	_, err := svc.Login(context.Background(), "mara@example.com", "wrong")
	require.Error(t, err)
	assert.Nil(t, mgr.Current())
}

func TestAuthService_RegisterValidation(t *testing.T) {
	fake, _, _, svc := newAuthFixture(t)

	tests := []struct {
		name string
		form RegisterForm
	}{
		{name: "missing name", form: RegisterForm{Email: "a@b.c", Password: "longenough"}},
		{name: "bad email", form: RegisterForm{FullName: "Mara", Email: "nope", Password: "longenough"}},
		{name: "short password", form: RegisterForm{FullName: "Mara", Email: "a@b.c", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.form)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
	assert.Zero(t, fake.registerCalls)

	_, err := svc.Register(context.Background(), RegisterForm{
		FullName: "Mara Boletova", Email: "mara@example.com", Password: "longenough",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, fake.registerCalls)
}

func TestAuthService_LogoutAlwaysClearsLocally(t *testing.T) {
	fake, mgr, cache, svc := newAuthFixture(t)
	fake.logoutErr = errors.New("server down")

	_, err := svc.Login(context.Background(), "mara@example.com", "secret123")
	require.NoError(t, err)

	_, _ = query.Fetch(context.Background(), cache, "posts/detail/1", 0,
		func(context.Context) (int, error) { return 1, nil })
	require.Equal(t, 1, cache.Len())

	require.NoError(t, svc.Logout(context.Background()))
	assert.Equal(t, 1, fake.logoutCalls)
	assert.Nil(t, mgr.Current())
	assert.Zero(t, cache.Len(), "cached reads are dropped on logout")
}

func TestAuthService_UpdateProfileSyncsSession(t *testing.T) {
	_, mgr, _, svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "mara@example.com", "secret123")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), models.UpdateProfileRequest{FullName: "Mara B."})
	require.NoError(t, err)
	assert.Equal(t, "Mara B.", updated.FullName)
	assert.Equal(t, "Mara B.", mgr.Profile().FullName)
}
