package model

import "time"

type ToastSeverity string

const (
	ToastSuccess ToastSeverity = "success"
	ToastError   ToastSeverity = "error"
	ToastWarning ToastSeverity = "warning"
	ToastInfo    ToastSeverity = "info"
)

// Toast is a transient user notification. It self-destructs after Duration
// unless dismissed earlier.
type Toast struct {
	ID       string        `json:"id"`
	Message  string        `json:"message"`
	Severity ToastSeverity `json:"severity"`
	Duration time.Duration `json:"duration"`
}
