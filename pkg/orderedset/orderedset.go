// Package orderedset provides a string set that preserves first-insertion
// order. Report columns are built by joining set values, so iteration order
// has to be deterministic across runs.
package orderedset

type Set struct {
	seen  map[string]struct{}
	items []string
}

func New() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add inserts v unless it is already present.
func (s *Set) Add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

// Values returns the distinct values in first-insertion order. The returned
// slice is a copy.
func (s *Set) Values() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Set) Len() int {
	return len(s.items)
}
