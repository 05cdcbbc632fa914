package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/syedhisham/live-courses-frontend/internal/backend"
	"github.com/syedhisham/live-courses-frontend/internal/metrics"
	"github.com/syedhisham/live-courses-frontend/internal/model"
	"github.com/syedhisham/live-courses-frontend/internal/notify"
)

// MaxUploadBytes caps a single material file. Oversized files are rejected
// before any network call.
const MaxUploadBytes = 200 << 20 // 200 MiB

// WizardStep is the wizard's position in the create-course flow.
type WizardStep int

const (
	StepCreatingCourse WizardStep = iota + 1
	StepAddingMaterials
	StepSchedulingSession
	StepCompleted
)

// Validation failures surfaced to the user. Caught locally, no backend call.
var (
	ErrWizardBusy       = errors.New("Another operation is already in progress")
	ErrTitlePriceNeeded = errors.New("Title and price are required")
	ErrNegativePrice    = errors.New("Price cannot be negative")
	ErrFileTooLarge     = errors.New("File is too large. Max 200MB.")
	ErrNoMaterials      = errors.New("Please upload at least one material before proceeding")
	ErrDateTimeNeeded   = errors.New("Please select both date and time for the session")
	ErrWrongStep        = errors.New("Not available at this step")
)

// WizardState is the snapshot the UI renders.
type WizardState struct {
	Step             WizardStep         `json:"step"`
	Course           *model.Course      `json:"course,omitempty"`
	Materials        []model.Material   `json:"materials"`
	Progress         int                `json:"progress"`
	Error            string             `json:"error,omitempty"`
	Busy             bool               `json:"busy"`
	SessionScheduled bool               `json:"sessionScheduled"`
	Session          *model.LiveSession `json:"session,omitempty"`
}

// wizard is one instructor's in-flight course creation. It only ever moves
// forward; a failed step stays put with a retryable error message.
type wizard struct {
	step      WizardStep
	course    *model.Course
	materials []model.Material
	progress  int
	lastError string
	busy      bool
	session   *model.LiveSession
}

// WizardService runs the instructor upload wizard: course creation, the
// three-step material sub-protocol, and the dependent session scheduling.
// One wizard per instructor, in memory only, dropped on logout.
type WizardService struct {
	api         *backend.Client
	uploader    *backend.Uploader
	sessions    *LiveSessionService
	toasts      *notify.Registry
	broadcaster Broadcaster

	mu      sync.Mutex
	wizards map[string]*wizard
}

// NewWizardService creates a new wizard service.
func NewWizardService(api *backend.Client, uploader *backend.Uploader, sessions *LiveSessionService, toasts *notify.Registry) *WizardService {
	return &WizardService{
		api:      api,
		uploader: uploader,
		sessions: sessions,
		toasts:   toasts,
		wizards:  make(map[string]*wizard),
	}
}

// SetBroadcaster injects the WebSocket hub for progress pushes.
func (s *WizardService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

func (s *WizardService) wizardFor(userID string) *wizard {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.wizards[userID]; ok {
		return w
	}
	w := &wizard{step: StepCreatingCourse}
	s.wizards[userID] = w
	return w
}

// State returns the current snapshot for the user's wizard, creating a fresh
// one at step 1 if none exists.
func (s *WizardService) State(userID string) WizardState {
	w := s.wizardFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(w)
}

// Abandon discards the user's wizard. Confirmed backend state (created
// course, registered materials) is intentionally left as is.
func (s *WizardService) Abandon(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, userID)
}

// begin checks preconditions under the lock and marks the wizard busy.
func (s *WizardService) begin(w *wizard, wantStep WizardStep) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w.busy {
		return ErrWizardBusy
	}
	if w.step != wantStep {
		return ErrWrongStep
	}
	w.busy = true
	w.lastError = ""
	return nil
}

func (s *WizardService) finish(w *wizard, userID string, err error) {
	s.mu.Lock()
	w.busy = false
	if err != nil {
		w.lastError = err.Error()
	}
	s.mu.Unlock()
	if err != nil {
		s.toasts.For(userID).Show(err.Error(), model.ToastError, 0)
	}
}

// CreateCourse runs step 1. Title and price are validated locally; price 0
// is a free course and is allowed.
func (s *WizardService) CreateCourse(ctx context.Context, userID, title, description string, price *float64) (WizardState, error) {
	w := s.wizardFor(userID)

	if title == "" || price == nil {
		return s.failLocal(w, userID, ErrTitlePriceNeeded)
	}
	if *price < 0 {
		return s.failLocal(w, userID, ErrNegativePrice)
	}
	if err := s.begin(w, StepCreatingCourse); err != nil {
		return s.State(userID), err
	}

	course, err := s.api.CreateCourse(ctx, backend.CreateCourseInput{
		Title:       title,
		Description: description,
		Price:       *price,
	})
	if err == nil {
		s.mu.Lock()
		w.course = course
		w.step = StepAddingMaterials
		s.mu.Unlock()
		logrus.Infof("wizard: course %s created by %s", course.ID, userID)
		s.toasts.For(userID).Show("Course created successfully", model.ToastSuccess, 0)
	}
	s.finish(w, userID, err)
	return s.State(userID), err
}

// RejectOversizeUpload records the oversize failure for a file the transport
// layer refused to read in full, mirroring the size check UploadMaterial
// applies when the declared size is available up front.
func (s *WizardService) RejectOversizeUpload(userID string) (WizardState, error) {
	w := s.wizardFor(userID)
	return s.failLocal(w, userID, ErrFileTooLarge)
}

// UploadMaterial runs the three-step sub-protocol for one file: authorize,
// transfer, register. Progress percentages are pushed to the user while the
// transfer runs and reset to 0 when it finishes either way. Repeatable for
// any number of files while the wizard stays at step 2.
func (s *WizardService) UploadMaterial(ctx context.Context, userID, filename, contentType string, size int64, r io.Reader) (WizardState, error) {
	w := s.wizardFor(userID)

	if size > MaxUploadBytes {
		return s.failLocal(w, userID, ErrFileTooLarge)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.begin(w, StepAddingMaterials); err != nil {
		return s.State(userID), err
	}
	s.mu.Lock()
	courseID := w.course.ID
	s.mu.Unlock()

	err := s.uploadOne(ctx, w, userID, courseID, filename, contentType, size, r)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
	} else {
		metrics.UploadsTotal.WithLabelValues("ok").Inc()
	}
	s.finish(w, userID, err)
	return s.State(userID), err
}

func (s *WizardService) uploadOne(ctx context.Context, w *wizard, userID, courseID, filename, contentType string, size int64, r io.Reader) error {
	auth, err := s.api.GetUploadURL(ctx, courseID, filename, contentType)
	if err != nil {
		return err
	}

	err = s.uploader.Upload(ctx, auth.UploadURL, contentType, size, r, func(percent int) {
		s.mu.Lock()
		w.progress = percent
		s.mu.Unlock()
		if s.broadcaster != nil {
			s.broadcaster.SendToUser(userID, "upload_progress", map[string]int{"progress": percent})
		}
	})
	if err != nil {
		s.resetProgress(w, userID)
		return err
	}

	course, err := s.api.AddMaterial(ctx, courseID, backend.AddMaterialInput{
		Key:         auth.Key,
		Filename:    filename,
		ContentType: contentType,
	})
	if err != nil {
		s.resetProgress(w, userID)
		return err
	}

	// Prefer the backend's acknowledged record; fall back to a local stub
	// when the returned course omits the new material.
	material := model.Material{Key: auth.Key, Filename: filename}
	if len(course.Materials) > 0 {
		material = course.Materials[len(course.Materials)-1]
	}

	s.mu.Lock()
	w.materials = append(w.materials, material)
	w.course = course
	w.progress = 0
	s.mu.Unlock()

	s.toasts.For(userID).Show("Material uploaded successfully", model.ToastSuccess, 0)
	return nil
}

// AdvanceToSchedule moves from step 2 to step 3 once at least one material
// has been registered.
func (s *WizardService) AdvanceToSchedule(userID string) (WizardState, error) {
	w := s.wizardFor(userID)

	s.mu.Lock()
	switch {
	case w.busy:
		s.mu.Unlock()
		return s.State(userID), ErrWizardBusy
	case w.step != StepAddingMaterials:
		s.mu.Unlock()
		return s.State(userID), ErrWrongStep
	case len(w.materials) == 0:
		s.mu.Unlock()
		return s.failLocal(w, userID, ErrNoMaterials)
	}
	w.step = StepSchedulingSession
	w.lastError = ""
	s.mu.Unlock()
	return s.State(userID), nil
}

// ScheduleSession runs step 3. The date/time pair is interpreted in the
// submitter's timezone and transmitted as an absolute UTC instant; a
// timezone-ambiguous string never goes out.
func (s *WizardService) ScheduleSession(ctx context.Context, userID, date, clock, timezone string) (WizardState, error) {
	w := s.wizardFor(userID)

	if date == "" || clock == "" {
		return s.failLocal(w, userID, ErrDateTimeNeeded)
	}
	startTime, err := ComposeStartTime(date, clock, timezone)
	if err != nil {
		return s.failLocal(w, userID, ErrDateTimeNeeded)
	}
	if err := s.begin(w, StepSchedulingSession); err != nil {
		return s.State(userID), err
	}

	s.mu.Lock()
	courseID := w.course.ID
	s.mu.Unlock()

	liveSession, err := s.sessions.Schedule(ctx, courseID, startTime)
	if err == nil {
		s.mu.Lock()
		w.session = liveSession
		w.step = StepCompleted
		state := snapshot(w)
		s.mu.Unlock()
		s.toasts.For(userID).Show("Live session scheduled", model.ToastSuccess, 0)
		if s.broadcaster != nil {
			s.broadcaster.SendToUser(userID, "wizard_completed", state)
		}
	}
	s.finish(w, userID, err)
	return s.State(userID), err
}

func (s *WizardService) failLocal(w *wizard, userID string, err error) (WizardState, error) {
	s.mu.Lock()
	w.lastError = err.Error()
	s.mu.Unlock()
	s.toasts.For(userID).Show(err.Error(), model.ToastError, 0)
	return s.State(userID), err
}

func (s *WizardService) resetProgress(w *wizard, userID string) {
	s.mu.Lock()
	w.progress = 0
	s.mu.Unlock()
	if s.broadcaster != nil {
		s.broadcaster.SendToUser(userID, "upload_progress", map[string]int{"progress": 0})
	}
}

func snapshot(w *wizard) WizardState {
	materials := make([]model.Material, len(w.materials))
	copy(materials, w.materials)
	return WizardState{
		Step:             w.step,
		Course:           w.course,
		Materials:        materials,
		Progress:         w.progress,
		Error:            w.lastError,
		Busy:             w.busy,
		SessionScheduled: w.session != nil,
		Session:          w.session,
	}
}

// ComposeStartTime interprets a calendar date ("2006-01-02") and a clock
// time ("15:04") in the named IANA timezone (the server's local zone when
// empty or unknown) and returns the equivalent UTC instant.
func ComposeStartTime(date, clock, timezone string) (time.Time, error) {
	loc := time.Local
	if timezone != "" {
		if parsed, err := time.LoadLocation(timezone); err == nil {
			loc = parsed
		}
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
