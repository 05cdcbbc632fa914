package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/syedhisham/live-courses-frontend/internal/backend"
	"github.com/syedhisham/live-courses-frontend/internal/notify"
	"github.com/syedhisham/live-courses-frontend/internal/service"
	"github.com/syedhisham/live-courses-frontend/internal/transport/rest/middleware"
)

// AuthHandler handles login, registration and logout.
type AuthHandler struct {
	authSvc    *service.AuthService
	wizardSvc  *service.WizardService
	toasts     *notify.Registry
	cookieName string
	cookieTTL  time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authSvc *service.AuthService, wizardSvc *service.WizardService, toasts *notify.Registry, cookieName string, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authSvc:    authSvc,
		wizardSvc:  wizardSvc,
		toasts:     toasts,
		cookieName: cookieName,
		cookieTTL:  cookieTTL,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=student instructor"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "name, valid email, password and role are required")
		return
	}

	if err := h.authSvc.Register(r.Context(), backend.RegisterInput(req)); err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "account created"})
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "valid email and password are required")
		return
	}

	token, user, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /v1/auth/logout. Wizard state and toasts for the user
// are discarded along with the session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := middleware.GetUser(ctx)
	sessionID := middleware.GetSessionID(ctx)
	credential := middleware.GetCredential(ctx)

	if err := h.authSvc.Logout(ctx, sessionID, credential); err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	if user != nil {
		h.wizardSvc.Abandon(user.ID)
		h.toasts.Drop(user.ID)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
