package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedhisham/live-courses-frontend/internal/backend"
	"github.com/syedhisham/live-courses-frontend/internal/model"
)

type memProvider struct {
	mu          sync.Mutex
	users       map[string]*model.UserSession
	credentials map[string]string
}

func newMemProvider() *memProvider {
	return &memProvider{
		users:       make(map[string]*model.UserSession),
		credentials: make(map[string]string),
	}
}

func (p *memProvider) Current(ctx context.Context, sessionID string) (*model.UserSession, string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	user, ok := p.users[sessionID]
	if !ok {
		return nil, "", ErrNotLoggedIn
	}
	return user, p.credentials[sessionID], nil
}

func (p *memProvider) Save(ctx context.Context, sessionID string, user *model.UserSession, credential string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.users[sessionID] = user
	p.credentials[sessionID] = credential
	return nil
}

func (p *memProvider) Clear(ctx context.Context, sessionID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.users, sessionID)
	delete(p.credentials, sessionID)
	return nil
}

func authTestServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "sid", Value: "backend-session"})
			io.WriteString(w, `{"status":true,"data":{"_id":"u1","name":"Hira","email":"hira@example.com"}}`)
		case "/users/me":
			io.WriteString(w, `{"status":true,"data":{"_id":"u1","name":"Hira","email":"hira@example.com","role":"instructor"}}`)
		case "/auth/logout":
			io.WriteString(w, `{"status":true}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginPersistsIdentityAndMintsToken(t *testing.T) {
	srv := authTestServer(t)
	provider := newMemProvider()
	svc := NewAuthService(backend.NewClient(srv.URL), provider, "test-secret", time.Hour)
	ctx := context.Background()

	token, user, err := svc.Login(ctx, "hira@example.com", "pw")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, model.RoleInstructor, user.Role, "profile comes from the who-am-I call")
	require.NotEmpty(t, token)

	sessionID, err := svc.ValidateToken(token)
	require.NoError(t, err)

	current, credential, err := svc.CurrentUser(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "u1", current.ID)
	assert.Equal(t, "sid=backend-session", credential)
}

func TestValidateTokenRejectsForgery(t *testing.T) {
	srv := authTestServer(t)
	provider := newMemProvider()
	svc := NewAuthService(backend.NewClient(srv.URL), provider, "test-secret", time.Hour)

	token, _, err := svc.Login(context.Background(), "hira@example.com", "pw")
	require.NoError(t, err)

	other := NewAuthService(backend.NewClient(srv.URL), provider, "different-secret", time.Hour)
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutClearsSessionEvenIfBackendFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "sid", Value: "backend-session"})
			io.WriteString(w, `{"status":true,"data":{"_id":"u1","role":"student"}}`)
		case "/users/me":
			io.WriteString(w, `{"status":true,"data":{"_id":"u1","role":"student"}}`)
		case "/auth/logout":
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)

	provider := newMemProvider()
	svc := NewAuthService(backend.NewClient(srv.URL), provider, "test-secret", time.Hour)
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "u@example.com", "pw")
	require.NoError(t, err)
	sessionID, err := svc.ValidateToken(token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sessionID, "sid=backend-session"))

	_, _, err = svc.CurrentUser(ctx, sessionID)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
