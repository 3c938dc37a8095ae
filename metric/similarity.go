package metric

import (
	"math"

	"github.com/viant/featsim/feature"
)

// Jaccard computes |a ∩ b| / |a ∪ b|. Two empty sets yield NaN.
func Jaccard(a, b feature.Set) float64 {
	union := a.UnionLen(b)
	if union == 0 {
		return math.NaN()
	}
	return float64(a.IntersectionLen(b)) / float64(union)
}

// SorensenDice computes 2|a ∩ b| / (|a| + |b|). Two empty sets yield NaN.
func SorensenDice(a, b feature.Set) float64 {
	total := a.Len() + b.Len()
	if total == 0 {
		return math.NaN()
	}
	return 2 * float64(a.IntersectionLen(b)) / float64(total)
}

// Cosine computes the cosine similarity dot(a,b) / (|a| |b|). It returns an
// error if the vectors have different lengths and NaN if either vector has
// zero magnitude.
func Cosine(a, b []float64) (float64, error) {
	if err := checkDims("cosine", a, b); err != nil {
		return 0, err
	}
	na := size(a)
	nb := size(b)
	if na == 0 || nb == 0 {
		return math.NaN(), nil
	}
	return dot(a, b) / na / nb, nil
}

// size is the distance from v to the zero vector of the same length.
func size(v []float64) float64 {
	d, _ := Euclidean(v, make([]float64, len(v)))
	return d
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
