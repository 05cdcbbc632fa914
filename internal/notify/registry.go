package notify

import "sync"

// ListenerFactory builds the listener wired into a user's store, usually a
// WebSocket push adapter bound to that user.
type ListenerFactory func(userID string) Listener

// Registry hands out one toast store per user. Stores are created lazily and
// dropped on logout.
type Registry struct {
	mu      sync.Mutex
	stores  map[string]*Store
	factory ListenerFactory
}

// NewRegistry creates a registry. factory may be nil.
func NewRegistry(factory ListenerFactory) *Registry {
	return &Registry{
		stores:  make(map[string]*Store),
		factory: factory,
	}
}

// For returns the store for userID, creating it on first use.
func (r *Registry) For(userID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[userID]; ok {
		return s
	}
	var listener Listener
	if r.factory != nil {
		listener = r.factory(userID)
	}
	s := NewStore(listener)
	r.stores[userID] = s
	return s
}

// Drop discards the store for userID, stopping any pending timers.
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	s, ok := r.stores[userID]
	if ok {
		delete(r.stores, userID)
	}
	r.mu.Unlock()
	if ok {
		s.Close()
	}
}
