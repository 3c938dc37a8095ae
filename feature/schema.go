package feature

import (
	"fmt"
	"sort"
	"strings"
)

// MaxFeatures is the largest schema the bitmask representation can encode.
const MaxFeatures = 64

// Schema is an immutable, ordered list of unique feature names. The order
// determines the index correspondence of every vector and bitmask projected
// through it.
type Schema struct {
	names []string
	index map[string]int
}

// NewSchema creates a schema from the given names. Surrounding whitespace is
// trimmed and duplicates are dropped, keeping the position of the first
// occurrence. It fails when no names remain, when a name is blank, or when
// there are more than MaxFeatures names.
func NewSchema(names ...string) (*Schema, error) {
	s := &Schema{
		names: make([]string, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, fmt.Errorf("%w at position %d", ErrBlankFeature, i)
		}
		if _, ok := s.index[name]; ok {
			continue
		}
		s.index[name] = len(s.names)
		s.names = append(s.names, name)
	}
	if len(s.names) == 0 {
		return nil, ErrEmptySchema
	}
	if len(s.names) > MaxFeatures {
		return nil, fmt.Errorf("%w: %d features, max %d", ErrSchemaTooWide, len(s.names), MaxFeatures)
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error. It is intended for
// package-level schemas built from literals.
func MustSchema(names ...string) *Schema {
	s, err := NewSchema(names...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of features N.
func (s *Schema) Len() int { return len(s.names) }

// Names returns a copy of the feature names in schema order.
func (s *Schema) Names() []string {
	return append([]string(nil), s.names...)
}

// Name returns the feature name at index i.
func (s *Schema) Name(i int) string { return s.names[i] }

// Index returns the position of name in the schema.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Unknown returns the sorted record keys that are not part of the schema.
// Projection ignores them; callers may want to report them.
func (s *Schema) Unknown(record Record) []string {
	var out []string
	for name := range record {
		if _, ok := s.index[name]; !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
