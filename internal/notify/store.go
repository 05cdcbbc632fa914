package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/syedhisham/live-courses-frontend/internal/model"
)

// DefaultDuration is the display window applied when a toast is shown
// without an explicit one.
const DefaultDuration = 5 * time.Second

// Listener observes store mutations, typically to push them to the browser.
type Listener interface {
	ToastShown(toast model.Toast)
	ToastDismissed(id string)
}

// Store holds the active toasts for one user in insertion order and retracts
// each one automatically once its display window elapses. Every toast owns an
// independent timer; dismissing one never disturbs the others.
type Store struct {
	mu       sync.Mutex
	toasts   []model.Toast
	timers   map[string]*time.Timer
	listener Listener
}

// NewStore creates an empty toast store. listener may be nil.
func NewStore(listener Listener) *Store {
	return &Store{
		timers:   make(map[string]*time.Timer),
		listener: listener,
	}
}

// Show appends a toast and schedules its automatic retraction after
// duration (DefaultDuration when duration <= 0). Returns the toast id.
func (s *Store) Show(message string, severity model.ToastSeverity, duration time.Duration) string {
	if duration <= 0 {
		duration = DefaultDuration
	}

	toast := model.Toast{
		ID:       uuid.New().String(),
		Message:  message,
		Severity: severity,
		Duration: duration,
	}

	s.mu.Lock()
	s.toasts = append(s.toasts, toast)
	s.timers[toast.ID] = time.AfterFunc(duration, func() {
		s.Dismiss(toast.ID)
	})
	s.mu.Unlock()

	if s.listener != nil {
		s.listener.ToastShown(toast)
	}
	return toast.ID
}

// Dismiss removes the toast with the given id. Dismissing an unknown or
// already-removed id is a no-op, which makes the manual path and the timer
// path safe to race.
func (s *Store) Dismiss(id string) {
	s.mu.Lock()
	timer, ok := s.timers[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	timer.Stop()
	delete(s.timers, id)
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	if s.listener != nil {
		s.listener.ToastDismissed(id)
	}
}

// Active returns the live toasts in insertion order.
func (s *Store) Active() []model.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Close stops all pending timers. Used when a user's store is discarded.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.toasts = nil
}
