package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/syedhisham/live-courses-frontend/internal/backend"
	"github.com/syedhisham/live-courses-frontend/internal/service"
)

var validate = validator.New()

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// errStatus maps a service error onto an HTTP status: backend-reported
// failures are a bad gateway from the front end's point of view, a busy
// wizard is a conflict, everything else is the caller's input.
func errStatus(err error) int {
	var be *backend.Error
	switch {
	case errors.As(err, &be):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrWizardBusy):
		return http.StatusConflict
	case errors.Is(err, service.ErrNotLoggedIn):
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}
