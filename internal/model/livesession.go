package model

import "time"

type LiveSessionStatus string

const (
	LiveSessionScheduled LiveSessionStatus = "scheduled"
	LiveSessionStarted   LiveSessionStatus = "started"
	LiveSessionEnded     LiveSessionStatus = "ended"
)

// LiveSession is a scheduled real-time meeting tied to a course. Status
// transitions after scheduling are driven by the backend.
type LiveSession struct {
	ID        string            `json:"_id"`
	CourseID  string            `json:"courseId"`
	StartTime time.Time         `json:"startTime"`
	Status    LiveSessionStatus `json:"status"`
	JoinURL   string            `json:"joinUrl,omitempty"`
	StartURL  string            `json:"startUrl,omitempty"`
}
