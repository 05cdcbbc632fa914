package backend

import (
	"context"
	"net/http"
	"strings"

	"github.com/syedhisham/live-courses-frontend/internal/model"
)

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginInput is the payload for authentication.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	_, err := c.call(ctx, http.MethodPost, "/auth/register", in, "Error while registering user")
	return err
}

// Login authenticates against the backend and returns the user payload
// together with the credential cookie the backend issued. The credential is
// what WithCredential expects on subsequent calls.
func (c *Client) Login(ctx context.Context, in LoginInput) (*model.UserSession, string, error) {
	resp, body, err := c.send(ctx, http.MethodPost, "/auth/login", in)
	if err != nil {
		return nil, "", &Error{Message: err.Error()}
	}
	data, err := normalize(resp, body, "Error while login user")
	if err != nil {
		return nil, "", err
	}

	var user model.UserSession
	if err := decode(data, &user, "Error while login user"); err != nil {
		return nil, "", err
	}
	return &user, credentialFromResponse(resp), nil
}

// Logout ends the backend session for the credential on ctx.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.call(ctx, http.MethodPost, "/auth/logout", nil, "Error in logging out user")
	return err
}

// credentialFromResponse flattens the Set-Cookie headers into a Cookie
// header value that replays the backend session on later requests.
func credentialFromResponse(resp *http.Response) string {
	cookies := resp.Cookies()
	pairs := make([]string, 0, len(cookies))
	for _, c := range cookies {
		pairs = append(pairs, c.Name+"="+c.Value)
	}
	return strings.Join(pairs, "; ")
}
