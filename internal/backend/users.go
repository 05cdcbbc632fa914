package backend

import (
	"context"
	"net/http"

	"github.com/syedhisham/live-courses-frontend/internal/model"
)

// FetchMe returns the profile of the user the credential on ctx belongs to.
func (c *Client) FetchMe(ctx context.Context) (*model.UserSession, error) {
	data, err := c.call(ctx, http.MethodGet, "/users/me", nil, "Error fetching user details")
	if err != nil {
		return nil, err
	}
	var user model.UserSession
	if err := decode(data, &user, "Error fetching user details"); err != nil {
		return nil, err
	}
	return &user, nil
}
