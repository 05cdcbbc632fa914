package service

import (
	"context"
	"errors"

	"github.com/syedhisham/live-courses-frontend/internal/backend"
)

// ErrInvalidCheckout is reported when the backend acknowledges the checkout
// but omits the redirect URL. No navigation happens in that case.
var ErrInvalidCheckout = errors.New("Invalid checkout session response")

// PaymentService starts third-party checkouts for course purchases.
type PaymentService struct {
	api *backend.Client
}

// NewPaymentService creates a new payment service.
func NewPaymentService(api *backend.Client) *PaymentService {
	return &PaymentService{api: api}
}

// Checkout creates a checkout session for a course and returns the redirect
// URL the browser should navigate to.
func (s *PaymentService) Checkout(ctx context.Context, courseID string) (string, error) {
	session, err := s.api.CreateCheckoutSession(ctx, courseID)
	if err != nil {
		return "", err
	}
	if session.URL == "" {
		return "", ErrInvalidCheckout
	}
	return session.URL, nil
}
