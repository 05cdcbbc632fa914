package middleware

import (
	"context"
	"net/http"

	"github.com/syedhisham/live-courses-frontend/internal/model"
	"github.com/syedhisham/live-courses-frontend/internal/service"
)

type contextKey string

const (
	UserKey       contextKey = "user"
	SessionIDKey  contextKey = "sessionId"
	CredentialKey contextKey = "credential"
)

// SessionMiddleware resolves the session cookie into the current user.
type SessionMiddleware struct {
	authSvc    *service.AuthService
	cookieName string
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(authSvc *service.AuthService, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{authSvc: authSvc, cookieName: cookieName}
}

// RequireUser validates the session cookie, loads the persisted identity and
// injects user, session id and backend credential into the request context.
func (m *SessionMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			http.Error(w, `{"error":"not logged in"}`, http.StatusUnauthorized)
			return
		}

		sessionID, err := m.authSvc.ValidateToken(cookie.Value)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired session"}`, http.StatusUnauthorized)
			return
		}

		user, credential, err := m.authSvc.CurrentUser(r.Context(), sessionID)
		if err != nil {
			http.Error(w, `{"error":"not logged in"}`, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, UserKey, user)
		ctx = context.WithValue(ctx, SessionIDKey, sessionID)
		ctx = context.WithValue(ctx, CredentialKey, credential)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireInstructor gates instructor-only routes. Must run after RequireUser.
func (m *SessionMiddleware) RequireInstructor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r.Context())
		if user == nil || user.Role != model.RoleInstructor {
			http.Error(w, `{"error":"instructor role required"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUser extracts the current user from context
func GetUser(ctx context.Context) *model.UserSession {
	if v := ctx.Value(UserKey); v != nil {
		return v.(*model.UserSession)
	}
	return nil
}

// GetSessionID extracts the session id from context
func GetSessionID(ctx context.Context) string {
	if v := ctx.Value(SessionIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetCredential extracts the backend credential from context
func GetCredential(ctx context.Context) string {
	if v := ctx.Value(CredentialKey); v != nil {
		return v.(string)
	}
	return ""
}
