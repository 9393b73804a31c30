package impl

// seenOrderSet tracks order identifiers that already triggered a new-order
// notification. It is bounded: once an insert pushes it past capacity only
// the most recently added half is retained. Not safe for concurrent use;
// the owning session serializes access.
type seenOrderSet struct {
	capacity int
	ids      map[string]struct{}
	history  []string // insertion order, oldest first
}

func newSeenOrderSet(capacity int) *seenOrderSet {
	return &seenOrderSet{
		capacity: capacity,
		ids:      make(map[string]struct{}, capacity),
	}
}

// Has reports whether the identifier was already seen.
func (s *seenOrderSet) Has(id string) bool {
	_, ok := s.ids[id]

	return ok
}

// Add records an identifier, evicting the oldest half when the set grows
// past capacity.
func (s *seenOrderSet) Add(id string) {
	if s.Has(id) {
		return
	}

	s.ids[id] = struct{}{}
	s.history = append(s.history, id)

	if len(s.history) > s.capacity {
		keep := s.history[len(s.history)-s.capacity/2:]
		s.ids = make(map[string]struct{}, s.capacity)
		for _, kept := range keep {
			s.ids[kept] = struct{}{}
		}
		s.history = append(s.history[:0], keep...)
	}
}

// Len returns the number of identifiers currently tracked.
func (s *seenOrderSet) Len() int {
	return len(s.history)
}
