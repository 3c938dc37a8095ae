package metric

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrDimensionMismatch is returned when two vectors differ in length.
var ErrDimensionMismatch = errors.New("metric: dimension mismatch")

func checkDims(op string, a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %s %d vs %d", ErrDimensionMismatch, op, len(a), len(b))
	}
	return nil
}

// Euclidean computes the Euclidean (L2) distance between two vectors. It
// returns an error if the vectors have different lengths.
func Euclidean(a, b []float64) (float64, error) {
	if err := checkDims("euclidean", a, b); err != nil {
		return 0, err
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// Manhattan computes the Manhattan (L1) distance between two vectors. It
// returns an error if the vectors have different lengths.
func Manhattan(a, b []float64) (float64, error) {
	if err := checkDims("manhattan", a, b); err != nil {
		return 0, err
	}
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum, nil
}

// Hamming counts the bit positions in which two bitmasks differ.
func Hamming(a, b uint64) float64 {
	return float64(bits.OnesCount64(a ^ b))
}
