package feature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	s := MustSchema("A", "B", "C")

	tests := []struct {
		name       string
		record     Record
		wantVector []float64
		wantBits   uint64
		wantSet    []string
	}{
		{"AB", Record{"A": 1, "B": 1}, []float64{1, 1, 0}, 0b110, []string{"A", "B"}},
		{"AC", Record{"A": 1, "C": 1}, []float64{1, 0, 1}, 0b101, []string{"A", "C"}},
		{"Empty", Record{}, []float64{0, 0, 0}, 0, []string{}},
		{"Nil", nil, []float64{0, 0, 0}, 0, []string{}},
		{"NegativeNotPresent", Record{"A": -1, "B": 0.5}, []float64{-1, 0.5, 0}, 0b010, []string{"B"}},
		{"ZeroNotPresent", Record{"C": 0}, []float64{0, 0, 0}, 0, []string{}},
		{"UnknownIgnored", Record{"Z": 3, "C": 2}, []float64{0, 0, 2}, 0b001, []string{"C"}},
		{"NaNIsZero", Record{"A": math.NaN(), "B": 1}, []float64{0, 1, 0}, 0b010, []string{"B"}},
		{"InfKept", Record{"A": math.Inf(1)}, []float64{math.Inf(1), 0, 0}, 0b100, []string{"A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := s.Project(tt.record)
			assert.Equal(t, tt.wantVector, p.Vector)
			assert.Equal(t, tt.wantBits, p.Bits)
			assert.Equal(t, tt.wantSet, p.Set.Names())
		})
	}
}

func TestProject_RepresentationsAgree(t *testing.T) {
	s := MustSchema("a", "b", "c", "d", "e", "f", "g", "h")
	p := s.Project(Record{"a": 0.5, "b": -2, "d": 3, "h": 1, "g": 0})
	n := s.Len()
	for i, v := range p.Vector {
		bit := p.Bits>>uint(n-1-i)&1 == 1
		assert.Equal(t, v > 0, bit, "bit %d", i)
		assert.Equal(t, v > 0, p.Set.Has(s.Name(i)), "set %s", s.Name(i))
	}
}

func TestProjection_BitString(t *testing.T) {
	s := MustSchema("A", "B", "C", "D")
	assert.Equal(t, "0100", s.Project(Record{"B": 1}).BitString())
	assert.Equal(t, "0000", s.Project(nil).BitString())
	assert.Equal(t, "1001", s.Project(Record{"A": 1, "D": 2}).BitString())
}
