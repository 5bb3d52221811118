package ad

// IDSet is a duplicate-free collection of independent-variable identifiers
// that preserves insertion order. The zero value is ready to use.
type IDSet struct {
	order []uint32
	seen  map[uint32]struct{}
}

// Add inserts id and reports whether it was not already present.
func (s *IDSet) Add(id uint32) bool {
	if s.seen == nil {
		s.seen = make(map[uint32]struct{}, 8)
	}
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Contains reports whether id is in the set.
func (s *IDSet) Contains(id uint32) bool {
	_, ok := s.seen[id]
	return ok
}

// Len returns the number of identifiers in the set.
func (s *IDSet) Len() int {
	return len(s.order)
}

// IDs returns the identifiers in insertion order. The slice is shared with
// the set; callers must not modify it.
func (s *IDSet) IDs() []uint32 {
	return s.order
}
