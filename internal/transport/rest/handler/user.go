package handler

import (
	"net/http"

	"github.com/syedhisham/live-courses-frontend/internal/transport/rest/middleware"
)

// UserHandler serves the current user's profile.
type UserHandler struct{}

// NewUserHandler creates a new user handler
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me handles GET /v1/me. The identity is the persisted whitelist subset, so
// role-based navigation survives a reload without another backend call.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
