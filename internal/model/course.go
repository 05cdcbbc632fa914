package model

import "time"

// Course is a purchasable unit of instructional content as returned by the
// backend. Materials are owned exclusively by their course.
type Course struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Instructor  Instructor   `json:"instructor"`
	Materials   []Material   `json:"materials"`
	LiveSession *LiveSession `json:"liveSession,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Instructor is the course owner reference embedded in course payloads.
type Instructor struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Material is a single uploaded file asset attached to a course. Immutable
// once registered. The access URL may be empty until resolved lazily via the
// access-url endpoint.
type Material struct {
	ID          string    `json:"_id"`
	Key         string    `json:"key"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	URL         string    `json:"url,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
