package grid

import "sort"

// Set is an unordered collection of positions.
type Set map[Position]struct{}

// NewSet returns a Set holding ps.
func NewSet(ps ...Position) Set {
	s := make(Set, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p and reports whether it was absent before.
func (s Set) Add(p Position) bool {
	if _, ok := s[p]; ok {
		return false
	}
	s[p] = struct{}{}
	return true
}

// Has reports whether p is in the set.
func (s Set) Has(p Position) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of positions in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the positions in row-major order.
func (s Set) Sorted() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
