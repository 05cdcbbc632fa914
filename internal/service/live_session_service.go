package service

import (
	"context"
	"time"

	"github.com/syedhisham/live-courses-frontend/internal/backend"
	"github.com/syedhisham/live-courses-frontend/internal/model"
)

// LiveSessionService schedules and starts live sessions. Status transitions
// beyond "start" are owned by the backend.
type LiveSessionService struct {
	api *backend.Client
}

// NewLiveSessionService creates a new live session service.
func NewLiveSessionService(api *backend.Client) *LiveSessionService {
	return &LiveSessionService{api: api}
}

// Schedule books a live session at an absolute UTC instant.
func (s *LiveSessionService) Schedule(ctx context.Context, courseID string, startTime time.Time) (*model.LiveSession, error) {
	return s.api.ScheduleLiveSession(ctx, courseID, startTime)
}

// Start starts a scheduled session and returns it with its join/start URLs.
func (s *LiveSessionService) Start(ctx context.Context, sessionID string) (*model.LiveSession, error) {
	return s.api.StartLiveSession(ctx, sessionID)
}
