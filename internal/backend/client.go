package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Client wraps all calls to the live-courses backend API. Every response is
// expected in the {status, message, data} envelope; failures of any kind are
// collapsed into *Error so callers only ever see a payload or a message.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend API client rooted at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Error is the single failure shape observed by callers of the client.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type credentialKey struct{}

// WithCredential attaches the user's backend session cookie to the context.
// The client forwards it on every request made with that context.
func WithCredential(ctx context.Context, cookie string) context.Context {
	return context.WithValue(ctx, credentialKey{}, cookie)
}

func credentialFrom(ctx context.Context) string {
	if v := ctx.Value(credentialKey{}); v != nil {
		return v.(string)
	}
	return ""
}

// send performs one request and returns the raw response with its body
// fully read. A non-nil error here is a transport failure.
func (c *Client) send(ctx context.Context, method, path string, payload interface{}) (*http.Response, []byte, error) {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if cookie := credentialFrom(ctx); cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.Warnf("[backend] %s %s transport error: %v", method, path, err)
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, respBody, nil
}

// call performs one request and applies the normalization rule: the backend
// message wins, then the transport error text, then the fallback string.
// It returns the envelope's data payload on success.
func (c *Client) call(ctx context.Context, method, path string, payload interface{}, fallback string) (json.RawMessage, error) {
	resp, body, err := c.send(ctx, method, path, payload)
	if err != nil {
		if msg := err.Error(); msg != "" {
			return nil, &Error{Message: msg}
		}
		return nil, &Error{Message: fallback}
	}
	return normalize(resp, body, fallback)
}

// normalize maps a completed HTTP exchange onto the uniform success/failure
// contract. Any envelope whose status is not true is a reported failure.
func normalize(resp *http.Response, body []byte, fallback string) (json.RawMessage, error) {
	var env envelope
	decodeErr := json.Unmarshal(body, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && env.Message != "" {
			return nil, &Error{Message: env.Message}
		}
		return nil, &Error{Message: fallback}
	}
	if decodeErr != nil {
		return nil, &Error{Message: fallback}
	}
	if !env.Status {
		if env.Message != "" {
			return nil, &Error{Message: env.Message}
		}
		return nil, &Error{Message: fallback}
	}
	return env.Data, nil
}

// decode unmarshals an envelope data payload into out, reporting the
// module fallback on malformed payloads.
func decode(data json.RawMessage, out interface{}, fallback string) error {
	if len(data) == 0 {
		return &Error{Message: fallback}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Message: fallback}
	}
	return nil
}
