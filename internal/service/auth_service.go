package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/syedhisham/live-courses-frontend/internal/backend"
	"github.com/syedhisham/live-courses-frontend/internal/model"
	"github.com/syedhisham/live-courses-frontend/internal/session"
)

var (
	ErrInvalidToken  = errors.New("invalid or expired session token")
	ErrNotLoggedIn   = errors.New("not logged in")
	ErrNotInstructor = errors.New("instructor role required")
)

// SessionClaims is the JWT payload of the front-end session cookie. It only
// names the session; the identity itself lives in the cache.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// AuthService orchestrates backend authentication and the front end's own
// session lifecycle: backend login issues a credential cookie, we persist the
// whitelisted identity under a fresh session id and hand the browser a JWT
// that names it.
type AuthService struct {
	api       *backend.Client
	sessions  session.Provider
	jwtSecret []byte
	ttl       time.Duration
}

// NewAuthService creates a new auth service.
func NewAuthService(api *backend.Client, sessions session.Provider, jwtSecret string, ttl time.Duration) *AuthService {
	return &AuthService{
		api:       api,
		sessions:  sessions,
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
	}
}

// Register creates a backend account. The caller logs in separately.
func (s *AuthService) Register(ctx context.Context, in backend.RegisterInput) error {
	return s.api.Register(ctx, in)
}

// Login authenticates against the backend, refreshes the profile via the
// "who am I" call, persists the identity and returns the session token to
// set as a cookie together with the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.UserSession, error) {
	user, credential, err := s.api.Login(ctx, backend.LoginInput{Email: email, Password: password})
	if err != nil {
		return "", nil, err
	}

	// The login payload shape varies; /users/me is authoritative.
	if me, meErr := s.api.FetchMe(backend.WithCredential(ctx, credential)); meErr == nil {
		user = me
	}

	sessionID := uuid.New().String()
	if err := s.sessions.Save(ctx, sessionID, user, credential); err != nil {
		return "", nil, err
	}

	token, err := s.mintToken(sessionID)
	if err != nil {
		return "", nil, err
	}

	logrus.Infof("user %s logged in as %s", user.Email, user.Role)
	return token, user, nil
}

// Logout ends the backend session and forgets the local one.
func (s *AuthService) Logout(ctx context.Context, sessionID, credential string) error {
	if err := s.api.Logout(backend.WithCredential(ctx, credential)); err != nil {
		// Local state is cleared regardless; the backend session will expire.
		logrus.Warnf("backend logout failed: %v", err)
	}
	return s.sessions.Clear(ctx, sessionID)
}

// CurrentUser resolves the persisted identity for a session id.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*model.UserSession, string, error) {
	user, credential, err := s.sessions.Current(ctx, sessionID)
	if err != nil {
		return nil, "", ErrNotLoggedIn
	}
	return user, credential, nil
}

func (s *AuthService) mintToken(sessionID string) (string, error) {
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken parses a session token and returns the session id it names.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.SessionID, nil
}
