package handler

import (
	"encoding/json"
	"net/http"

	"github.com/syedhisham/live-courses-frontend/internal/backend"
	"github.com/syedhisham/live-courses-frontend/internal/service"
	"github.com/syedhisham/live-courses-frontend/internal/transport/rest/middleware"
)

// PaymentHandler starts course checkouts.
type PaymentHandler struct {
	paymentSvc *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentSvc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

type checkoutRequest struct {
	CourseID string `json:"courseId" validate:"required"`
}

// Checkout handles POST /v1/checkout. On success the browser navigates to
// the returned URL; on any failure it stays where it is.
func (h *PaymentHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "courseId is required")
		return
	}

	ctx := backend.WithCredential(r.Context(), middleware.GetCredential(r.Context()))
	url, err := h.paymentSvc.Checkout(ctx, req.CourseID)
	if err != nil {
		writeError(w, errStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
