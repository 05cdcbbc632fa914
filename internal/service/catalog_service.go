package service

import (
	"context"

	"github.com/syedhisham/live-courses-frontend/internal/backend"
	"github.com/syedhisham/live-courses-frontend/internal/model"
)

// CatalogService serves the course lists the dashboard renders. An empty
// result is a valid answer, distinct from a failed fetch; retries are always
// a fresh fetch replacing prior state.
type CatalogService struct {
	api *backend.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(api *backend.Client) *CatalogService {
	return &CatalogService{api: api}
}

// Browse returns the full catalog. A nil slice is normalized to empty so the
// view can tell "no courses yet" apart from an error.
func (s *CatalogService) Browse(ctx context.Context) ([]model.Course, error) {
	courses, err := s.api.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// Purchased returns the current user's owned courses.
func (s *CatalogService) Purchased(ctx context.Context) ([]model.Course, error) {
	courses, err := s.api.PurchasedCourses(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// Mine returns the courses the current instructor owns.
func (s *CatalogService) Mine(ctx context.Context) ([]model.Course, error) {
	courses, err := s.api.MyCourses(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// MaterialAccessURL lazily resolves the signed access URL for one material.
func (s *CatalogService) MaterialAccessURL(ctx context.Context, courseID, materialID string) (string, error) {
	return s.api.MaterialAccessURL(ctx, courseID, materialID)
}
