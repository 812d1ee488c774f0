package internal

import "sort"

// StringSet collects unique strings and hands them back sorted.
type StringSet struct {
	v map[string]bool
}

func NewStringSet() *StringSet {
	return &StringSet{v: make(map[string]bool)}
}

// Add records s and reports whether it was new.
func (s *StringSet) Add(str string) bool {
	if s.v[str] {
		return false // Already seen
	}
	s.v[str] = true
	return true
}

func (s *StringSet) Contains(str string) bool {
	return s.v[str]
}

func (s *StringSet) Len() int {
	return len(s.v)
}

// Sorted returns the members in lexicographic order.
func (s *StringSet) Sorted() []string {
	out := make([]string, 0, len(s.v))
	for str := range s.v {
		out = append(out, str)
	}
	sort.Strings(out)
	return out
}
