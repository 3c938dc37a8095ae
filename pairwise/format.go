package pairwise

import (
	"math"
	"strconv"
)

// Precision is the number of decimal places kept by Round.
const Precision = 2

// Round rounds x to two decimal places. The exact binary value of x is
// rounded to the nearest multiple of 0.01; exact ties go to the even digit.
// Values such as 1.005, stored just below the tie, round down. NaN and
// infinities are returned unchanged.
func Round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', Precision, 64), 64)
	if err != nil {
		return x
	}
	return r
}
