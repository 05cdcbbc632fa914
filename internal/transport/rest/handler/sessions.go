package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/syedhisham/live-courses-frontend/internal/backend"
	"github.com/syedhisham/live-courses-frontend/internal/service"
	"github.com/syedhisham/live-courses-frontend/internal/transport/rest/middleware"
)

// LiveSessionHandler exposes instructor actions on live sessions.
type LiveSessionHandler struct {
	sessionSvc *service.LiveSessionService
}

// NewLiveSessionHandler creates a new live session handler
func NewLiveSessionHandler(sessionSvc *service.LiveSessionService) *LiveSessionHandler {
	return &LiveSessionHandler{sessionSvc: sessionSvc}
}

// Start handles POST /v1/sessions/{sessionId}/start
func (h *LiveSessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	ctx := backend.WithCredential(r.Context(), middleware.GetCredential(r.Context()))

	liveSession, err := h.sessionSvc.Start(ctx, sessionID)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, liveSession)
}
