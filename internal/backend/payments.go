package backend

import (
	"context"
	"net/http"
)

// CheckoutSession is the third-party checkout redirect issued by the backend.
type CheckoutSession struct {
	URL string `json:"url"`
}

// CreateCheckoutSession starts a checkout for one course. The returned
// session may lack a URL; callers must treat that as a malformed response.
func (c *Client) CreateCheckoutSession(ctx context.Context, courseID string) (*CheckoutSession, error) {
	payload := map[string]string{"courseId": courseID}
	data, err := c.call(ctx, http.MethodPost, "/payments/create-checkout-session", payload, "Failed to start checkout")
	if err != nil {
		return nil, err
	}
	var session CheckoutSession
	if err := decode(data, &session, "Failed to start checkout"); err != nil {
		return nil, err
	}
	return &session, nil
}
