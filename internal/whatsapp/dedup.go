package whatsapp

import "sync"

// SeenStore suppresses re-delivered webhook events. Implementations may
// be swapped for a durable/shared store in multi-instance deployments.
type SeenStore interface {
	// SeenOrAdd reports whether the id was already recorded, adding it
	// if not.
	SeenOrAdd(id string) bool
}

// RecentSet is a capacity-bounded, in-process SeenStore. When full, the
// oldest id is evicted. Best effort only: it does not survive restarts
// and is not shared across instances.
type RecentSet struct {
	mu       sync.Mutex
	capacity int
	order    []string
	present  map[string]struct{}
}

func NewRecentSet(capacity int) *RecentSet {
	if capacity <= 0 {
		capacity = 256
	}
	return &RecentSet{
		capacity: capacity,
		present:  make(map[string]struct{}, capacity),
	}
}

func (s *RecentSet) SeenOrAdd(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.present[id]; ok {
		return true
	}
	if len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.present, oldest)
	}
	s.order = append(s.order, id)
	s.present[id] = struct{}{}
	return false
}

// Len reports how many ids are currently held.
func (s *RecentSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
