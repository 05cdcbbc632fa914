package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/syedhisham/live-courses-frontend/internal/notify"
	"github.com/syedhisham/live-courses-frontend/internal/transport/rest/middleware"
)

// ToastHandler exposes the user's active toasts.
type ToastHandler struct {
	toasts *notify.Registry
}

// NewToastHandler creates a new toast handler
func NewToastHandler(toasts *notify.Registry) *ToastHandler {
	return &ToastHandler{toasts: toasts}
}

// List handles GET /v1/toasts
func (h *ToastHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	writeJSON(w, http.StatusOK, h.toasts.For(user.ID).Active())
}

// Dismiss handles DELETE /v1/toasts/{toastId}. Dismissing an id that is
// already gone is fine; the timer may have won the race.
func (h *ToastHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	h.toasts.For(user.ID).Dismiss(mux.Vars(r)["toastId"])
	writeJSON(w, http.StatusOK, map[string]string{"message": "dismissed"})
}
