package feature

import "sort"

// Set is a set of feature names.
type Set map[string]struct{}

// NewSet returns a set holding the given names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the set cardinality.
func (s Set) Len() int { return len(s) }

// Names returns the members in lexical order.
func (s Set) Names() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// IntersectionLen returns |s ∩ o|.
func (s Set) IntersectionLen(o Set) int {
	small, large := s, o
	if len(small) > len(large) {
		small, large = large, small
	}
	n := 0
	for name := range small {
		if _, ok := large[name]; ok {
			n++
		}
	}
	return n
}

// UnionLen returns |s ∪ o|.
func (s Set) UnionLen(o Set) int {
	return len(s) + len(o) - s.IntersectionLen(o)
}
