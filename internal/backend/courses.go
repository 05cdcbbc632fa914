package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/syedhisham/live-courses-frontend/internal/model"
)

// CreateCourseInput is the payload for course creation.
type CreateCourseInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// UploadAuthorization is the backend's grant for one direct-to-storage
// upload: a pre-signed destination URL and the object key it reserves.
type UploadAuthorization struct {
	UploadURL string `json:"uploadURL"`
	Key       string `json:"key"`
}

// AddMaterialInput registers an uploaded object with its course.
type AddMaterialInput struct {
	Key         string `json:"key"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

// ListCourses returns the full course catalog.
func (c *Client) ListCourses(ctx context.Context) ([]model.Course, error) {
	data, err := c.call(ctx, http.MethodGet, "/courses/list", nil, "Error in listing all courses")
	if err != nil {
		return nil, err
	}
	var courses []model.Course
	if err := decode(data, &courses, "Error in listing all courses"); err != nil {
		return nil, err
	}
	return courses, nil
}

// PurchasedCourses returns the courses owned by the current user.
func (c *Client) PurchasedCourses(ctx context.Context) ([]model.Course, error) {
	data, err := c.call(ctx, http.MethodGet, "/courses/purchased", nil, "Error in listing my bought courses")
	if err != nil {
		return nil, err
	}
	var courses []model.Course
	if err := decode(data, &courses, "Error in listing my bought courses"); err != nil {
		return nil, err
	}
	return courses, nil
}

// MyCourses returns the courses owned by the current instructor, including
// their scheduled live session when one exists.
func (c *Client) MyCourses(ctx context.Context) ([]model.Course, error) {
	data, err := c.call(ctx, http.MethodGet, "/courses/mine", nil, "Error in listing my courses")
	if err != nil {
		return nil, err
	}
	var courses []model.Course
	if err := decode(data, &courses, "Error in listing my courses"); err != nil {
		return nil, err
	}
	return courses, nil
}

// CreateCourse creates a course and returns the backend's record of it.
func (c *Client) CreateCourse(ctx context.Context, in CreateCourseInput) (*model.Course, error) {
	data, err := c.call(ctx, http.MethodPost, "/courses/create", in, "Failed to create course")
	if err != nil {
		return nil, err
	}
	var course model.Course
	if err := decode(data, &course, "Failed to create course"); err != nil {
		return nil, err
	}
	return &course, nil
}

// GetUploadURL requests an upload authorization for one file of a course.
func (c *Client) GetUploadURL(ctx context.Context, courseID, fileName, contentType string) (*UploadAuthorization, error) {
	payload := map[string]string{"fileName": fileName, "contentType": contentType}
	data, err := c.call(ctx, http.MethodPost, "/courses/"+courseID+"/materials/upload-url", payload, "Failed to get upload URL")
	if err != nil {
		return nil, err
	}
	var auth UploadAuthorization
	if err := decode(data, &auth, "Failed to get upload URL"); err != nil {
		return nil, err
	}
	return &auth, nil
}

// AddMaterial registers an uploaded object and returns the updated course.
func (c *Client) AddMaterial(ctx context.Context, courseID string, in AddMaterialInput) (*model.Course, error) {
	data, err := c.call(ctx, http.MethodPost, "/courses/"+courseID+"/materials", in, "Failed to add material")
	if err != nil {
		return nil, err
	}
	var course model.Course
	if err := decode(data, &course, "Failed to add material"); err != nil {
		return nil, err
	}
	return &course, nil
}

// MaterialAccessURL resolves the signed access URL for one material. This
// endpoint does not use the standard envelope.
func (c *Client) MaterialAccessURL(ctx context.Context, courseID, materialID string) (string, error) {
	const fallback = "Failed to get material access URL"

	resp, body, err := c.send(ctx, http.MethodGet, "/courses/"+courseID+"/materials/"+materialID+"/access-url", nil)
	if err != nil {
		return "", &Error{Message: err.Error()}
	}

	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		URL     string `json:"url"`
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if jsonErr := json.Unmarshal(body, &payload); jsonErr == nil && payload.Message != "" {
			return "", &Error{Message: payload.Message}
		}
		return "", &Error{Message: fallback}
	}
	if err := json.Unmarshal(body, &payload); err != nil || !payload.Success || payload.URL == "" {
		return "", &Error{Message: fallback}
	}
	return payload.URL, nil
}
