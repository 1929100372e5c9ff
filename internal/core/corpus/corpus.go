// Package corpus holds the deduplicated set of accepted sentences.
// Keys are exact strings; no canonicalization happens here
package corpus

import "sort"

// Set is not safe for concurrent mutation. Each worker fills its own Set and
// the dispatcher merges them on one goroutine
type Set struct {
	m map[string]struct{}
}

// New returns an empty set
func New() *Set {
	return &Set{m: make(map[string]struct{})}
}

// Add inserts s and reports whether it was new
func (s *Set) Add(unit string) bool {
	if _, ok := s.m[unit]; ok {
		return false
	}
	s.m[unit] = struct{}{}
	return true
}

// Has reports membership
func (s *Set) Has(unit string) bool {
	_, ok := s.m[unit]
	return ok
}

// Len is the number of distinct entries
func (s *Set) Len() int { return len(s.m) }

// Merge adds every entry of other and returns how many were new
func (s *Set) Merge(other *Set) int {
	if other == nil {
		return 0
	}
	added := 0
	for k := range other.m {
		if s.Add(k) {
			added++
		}
	}
	return added
}

// Lines returns the entries in byte order. Order carries no meaning; sorting
// only makes the artifact reproducible
func (s *Set) Lines() []string {
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
