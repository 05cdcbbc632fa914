package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/syedhisham/live-courses-frontend/internal/backend"
	"github.com/syedhisham/live-courses-frontend/internal/service"
	"github.com/syedhisham/live-courses-frontend/internal/transport/rest/middleware"
)

// WizardHandler drives the instructor course creation wizard.
type WizardHandler struct {
	wizardSvc *service.WizardService
}

// NewWizardHandler creates a new wizard handler
func NewWizardHandler(wizardSvc *service.WizardService) *WizardHandler {
	return &WizardHandler{wizardSvc: wizardSvc}
}

type createCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
}

type scheduleRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
}

// State handles GET /v1/wizard
func (h *WizardHandler) State(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	writeJSON(w, http.StatusOK, h.wizardSvc.State(user.ID))
}

// Abandon handles DELETE /v1/wizard. In-memory wizard state is discarded;
// already-confirmed backend state stays.
func (h *WizardHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	h.wizardSvc.Abandon(user.ID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "wizard discarded"})
}

// CreateCourse handles POST /v1/wizard/course (step 1)
func (h *WizardHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req createCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := backend.WithCredential(r.Context(), middleware.GetCredential(r.Context()))
	state, err := h.wizardSvc.CreateCourse(ctx, user.ID, req.Title, req.Description, req.Price)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// UploadMaterial handles POST /v1/wizard/materials (step 2, multipart).
// The file streams through the three-step sub-protocol; oversized files are
// rejected before any backend traffic.
func (h *WizardHandler) UploadMaterial(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	// Slightly above the wizard's cap so multipart framing fits; anything
	// that still trips the reader is an oversize file.
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxUploadBytes+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_, rejErr := h.wizardSvc.RejectOversizeUpload(user.ID)
			writeError(w, errStatus(rejErr), rejErr.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "Select a file first")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ctx := backend.WithCredential(r.Context(), middleware.GetCredential(r.Context()))
	state, err := h.wizardSvc.UploadMaterial(ctx, user.ID, header.Filename, contentType, header.Size, file)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// AdvanceToSchedule handles POST /v1/wizard/next (step 2 → 3)
func (h *WizardHandler) AdvanceToSchedule(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	state, err := h.wizardSvc.AdvanceToSchedule(user.ID)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// ScheduleSession handles POST /v1/wizard/schedule (step 3)
func (h *WizardHandler) ScheduleSession(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := backend.WithCredential(r.Context(), middleware.GetCredential(r.Context()))
	state, err := h.wizardSvc.ScheduleSession(ctx, user.ID, req.Date, req.Time, req.Timezone)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, state)
}
