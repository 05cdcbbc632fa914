package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/syedhisham/live-courses-frontend/internal/backend"
	"github.com/syedhisham/live-courses-frontend/internal/service"
	"github.com/syedhisham/live-courses-frontend/internal/transport/rest/middleware"
	"github.com/syedhisham/live-courses-frontend/internal/transport/rest/view"
)

// CatalogHandler serves the course lists and material access URLs.
type CatalogHandler struct {
	catalogSvc *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogSvc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// Browse handles GET /v1/courses. An empty catalog is a valid, non-error
// answer; the UI renders its empty affordance off the zero-length list.
func (h *CatalogHandler) Browse(w http.ResponseWriter, r *http.Request) {
	ctx := backend.WithCredential(r.Context(), middleware.GetCredential(r.Context()))
	courses, err := h.catalogSvc.Browse(ctx)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view.BrowseCards(courses))
}

// Purchased handles GET /v1/courses/purchased
func (h *CatalogHandler) Purchased(w http.ResponseWriter, r *http.Request) {
	ctx := backend.WithCredential(r.Context(), middleware.GetCredential(r.Context()))
	courses, err := h.catalogSvc.Purchased(ctx)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view.PurchasedCards(courses))
}

// Mine handles GET /v1/courses/mine. Instructors manage their own courses
// from these cards, including the start affordance for a scheduled session.
func (h *CatalogHandler) Mine(w http.ResponseWriter, r *http.Request) {
	ctx := backend.WithCredential(r.Context(), middleware.GetCredential(r.Context()))
	courses, err := h.catalogSvc.Mine(ctx)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view.InstructorManageCards(courses))
}

// MaterialAccessURL handles GET /v1/courses/{courseId}/materials/{materialId}/access-url
func (h *CatalogHandler) MaterialAccessURL(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ctx := backend.WithCredential(r.Context(), middleware.GetCredential(r.Context()))

	url, err := h.catalogSvc.MaterialAccessURL(ctx, vars["courseId"], vars["materialId"])
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
