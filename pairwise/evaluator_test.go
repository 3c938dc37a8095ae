package pairwise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/featsim/feature"
	"github.com/viant/featsim/metric"
)

func TestEvaluate_Scenario(t *testing.T) {
	ev, err := NewEvaluator(feature.MustSchema("A", "B", "C"))
	require.NoError(t, err)

	r1 := feature.Record{"A": 1, "B": 1}
	r2 := feature.Record{"A": 1, "C": 1}

	got, err := ev.Evaluate(r1, r2)
	require.NoError(t, err)
	require.Len(t, got, 6)

	assert.InDelta(t, math.Sqrt2, got[metric.NameEuclidean], 1e-12)
	assert.InDelta(t, 2, got[metric.NameManhattan], 1e-12)
	assert.Equal(t, 2.0, got[metric.NameHamming])
	assert.InDelta(t, 1.0/3, got[metric.NameJaccard], 1e-12)
	assert.InDelta(t, 0.5, got[metric.NameSorensenDice], 1e-12)
	assert.InDelta(t, 0.5, got[metric.NameCosine], 1e-12)

	assert.Equal(t, Result{
		metric.NameEuclidean:    1.41,
		metric.NameManhattan:    2,
		metric.NameHamming:      2,
		metric.NameJaccard:      0.33,
		metric.NameSorensenDice: 0.5,
		metric.NameCosine:       0.5,
	}, got.Rounded())
}

func TestEvaluate_Symmetric(t *testing.T) {
	ev, err := NewEvaluator(feature.MustSchema("a", "b", "c", "d"))
	require.NoError(t, err)
	a := feature.Record{"a": 0.5, "b": -1, "d": 2}
	b := feature.Record{"b": 1, "c": 1, "d": 1}

	ab, err := ev.Evaluate(a, b)
	require.NoError(t, err)
	ba, err := ev.Evaluate(b, a)
	require.NoError(t, err)
	for _, n := range metric.Names() {
		assert.InDelta(t, ab[n], ba[n], 1e-12, n.String())
	}
}

func TestEvaluate_SelfDistanceIsZero(t *testing.T) {
	ev, err := NewEvaluator(feature.MustSchema("a", "b", "c"))
	require.NoError(t, err)
	r := feature.Record{"a": 2, "b": -3}

	got, err := ev.Evaluate(r, r)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got[metric.NameEuclidean])
	assert.Equal(t, 0.0, got[metric.NameManhattan])
	assert.Equal(t, 0.0, got[metric.NameHamming])
	assert.Equal(t, 1.0, got[metric.NameJaccard])
	assert.Equal(t, 1.0, got[metric.NameSorensenDice])
	assert.InDelta(t, 1.0, got[metric.NameCosine], 1e-12)
}

func TestEvaluate_EmptyRecords(t *testing.T) {
	ev, err := NewEvaluator(feature.MustSchema("a", "b"))
	require.NoError(t, err)

	got, err := ev.Evaluate(feature.Record{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got[metric.NameEuclidean])
	assert.True(t, math.IsNaN(got[metric.NameJaccard]))
	assert.True(t, math.IsNaN(got[metric.NameSorensenDice]))
	assert.True(t, math.IsNaN(got[metric.NameCosine]))

	rounded := got.Rounded()
	assert.True(t, math.IsNaN(rounded[metric.NameCosine]))
}

func TestEvaluate_NegativeOnlyRecord(t *testing.T) {
	ev, err := NewEvaluator(feature.MustSchema("a", "b"))
	require.NoError(t, err)

	got, err := ev.Evaluate(feature.Record{"a": -1}, feature.Record{"a": 1})
	require.NoError(t, err)
	assert.InDelta(t, -1, got[metric.NameCosine], 1e-12)
	assert.Equal(t, 1.0, got[metric.NameHamming])
	assert.Equal(t, 0.0, got[metric.NameJaccard])
}

func TestCompare_DimensionMismatch(t *testing.T) {
	ev, err := NewEvaluator(feature.MustSchema("a", "b"))
	require.NoError(t, err)
	other := feature.MustSchema("a", "b", "c")

	_, err = ev.Compare(ev.Schema().Project(nil), other.Project(nil))
	assert.ErrorIs(t, err, metric.ErrDimensionMismatch)
}

func TestNewEvaluator_NilSchema(t *testing.T) {
	_, err := NewEvaluator(nil)
	assert.Error(t, err)
}
