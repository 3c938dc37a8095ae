package feature

import (
	"math"
	"strconv"
	"strings"
)

// Record maps a feature name to a signed weight. Missing features weigh 0.
type Record map[string]float64

// Projection holds the three derived representations of a record. Bits and
// Set are both derived from the sign of Vector and always agree with it.
type Projection struct {
	Vector []float64
	Bits   uint64
	Set    Set
}

// Project converts record into its vector, bitmask and set representations
// using the schema order. A feature absent from the record, or carrying a NaN
// weight, contributes 0. Names outside the schema are ignored.
func (s *Schema) Project(record Record) Projection {
	n := len(s.names)
	p := Projection{
		Vector: make([]float64, n),
		Set:    make(Set, n),
	}
	for i, name := range s.names {
		w, ok := record[name]
		if !ok || math.IsNaN(w) {
			w = 0
		}
		p.Vector[i] = w
		if w > 0 {
			p.Bits |= 1 << uint(n-1-i)
			p.Set[name] = struct{}{}
		}
	}
	return p
}

// BitString formats the bitmask as N binary digits, schema[0] first.
func (p Projection) BitString() string {
	n := len(p.Vector)
	s := strconv.FormatUint(p.Bits, 2)
	if len(s) < n {
		s = strings.Repeat("0", n-len(s)) + s
	}
	return s
}
