package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/syedhisham/live-courses-frontend/internal/model"
)

// ScheduleLiveSession schedules a live session for a course. startTime must
// already be an absolute UTC instant; it is transmitted as RFC 3339.
func (c *Client) ScheduleLiveSession(ctx context.Context, courseID string, startTime time.Time) (*model.LiveSession, error) {
	payload := map[string]string{
		"courseId":  courseID,
		"startTime": startTime.UTC().Format(time.RFC3339),
	}
	data, err := c.call(ctx, http.MethodPost, "/sessions/schedule", payload, "Error scheduling session")
	if err != nil {
		return nil, err
	}
	var session model.LiveSession
	if err := decode(data, &session, "Error scheduling session"); err != nil {
		return nil, err
	}
	return &session, nil
}

// StartLiveSession starts a previously scheduled session.
func (c *Client) StartLiveSession(ctx context.Context, sessionID string) (*model.LiveSession, error) {
	data, err := c.call(ctx, http.MethodPost, "/sessions/"+sessionID+"/start", nil, "Error starting session")
	if err != nil {
		return nil, err
	}
	var session model.LiveSession
	if err := decode(data, &session, "Error starting session"); err != nil {
		return nil, err
	}
	return &session, nil
}
