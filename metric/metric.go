package metric

import "fmt"

// Name identifies one of the six metrics. The string values are the keys of
// an evaluation result.
type Name string

const (
	NameEuclidean    Name = "euclidean"
	NameManhattan    Name = "manhattan"
	NameHamming      Name = "hamming"
	NameJaccard      Name = "jaccard"
	NameSorensenDice Name = "sorensenDice"
	NameCosine       Name = "cosineSim"
)

var names = []Name{
	NameEuclidean,
	NameManhattan,
	NameHamming,
	NameJaccard,
	NameSorensenDice,
	NameCosine,
}

// Names returns all metric names in presentation order.
func Names() []Name {
	return append([]Name(nil), names...)
}

// ParseName resolves a metric name.
func ParseName(s string) (Name, error) {
	for _, n := range names {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("metric: unknown metric %q", s)
}

// Distance reports whether smaller values of the metric mean more alike.
func (n Name) Distance() bool {
	switch n {
	case NameEuclidean, NameManhattan, NameHamming:
		return true
	default:
		return false
	}
}

func (n Name) String() string { return string(n) }
