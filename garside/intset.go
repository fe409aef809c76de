package garside

import "sort"

// IntSet is a set of ints over {1..n-1} with deterministic ascending
// iteration order. Left-weighting (spec.md §4.6) requires the first
// element of S \ F in a fixed, reproducible order; a sorted set over the
// natural int comparator satisfies that without needing an external
// ordered-set library (spec.md §9 design note).
type IntSet struct {
	present map[int]bool
}

// NewIntSet returns an empty set.
func NewIntSet() *IntSet {
	return &IntSet{present: map[int]bool{}}
}

// Insert adds i to the set.
func (s *IntSet) Insert(i int) {
	s.present[i] = true
}

// Contains reports whether i is in the set.
func (s *IntSet) Contains(i int) bool {
	return s.present[i]
}

// Len returns the number of elements.
func (s *IntSet) Len() int { return len(s.present) }

// Sorted returns the set's elements in ascending order.
func (s *IntSet) Sorted() []int {
	out := make([]int, 0, len(s.present))
	for k := range s.present {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// IsSupersetOf reports whether s contains every element of other.
func (s *IntSet) IsSupersetOf(other *IntSet) bool {
	for k := range other.present {
		if !s.present[k] {
			return false
		}
	}
	return true
}

// FirstDifference returns the smallest element of other that is not in s,
// and true, or (0, false) if other is a subset of s. This is the
// deterministic tie-break used by the left-weighting engine to pick
// "some j in S \ F".
func (s *IntSet) FirstDifference(other *IntSet) (int, bool) {
	best, found := 0, false
	for k := range other.present {
		if s.present[k] {
			continue
		}
		if !found || k < best {
			best = k
			found = true
		}
	}
	return best, found
}
