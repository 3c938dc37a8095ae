package pairwise

import (
	"errors"
	"fmt"

	"github.com/viant/featsim/feature"
	"github.com/viant/featsim/metric"
)

// Result maps each metric name to its score for one pair of records.
type Result map[metric.Name]float64

// Rounded returns a copy of r with every value passed through Round.
func (r Result) Rounded() Result {
	out := make(Result, len(r))
	for k, v := range r {
		out[k] = Round(v)
	}
	return out
}

// Evaluator computes all metrics for pairs of records under one schema.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	schema *feature.Schema
}

// NewEvaluator creates an Evaluator bound to schema.
func NewEvaluator(schema *feature.Schema) (*Evaluator, error) {
	if schema == nil {
		return nil, errors.New("pairwise: schema is nil")
	}
	return &Evaluator{schema: schema}, nil
}

// Schema returns the schema records are projected through.
func (e *Evaluator) Schema() *feature.Schema { return e.schema }

// Evaluate projects a and b and returns the unrounded score of every metric.
func (e *Evaluator) Evaluate(a, b feature.Record) (Result, error) {
	return e.Compare(e.schema.Project(a), e.schema.Project(b))
}

// Compare scores two projections that were produced by the same schema.
func (e *Evaluator) Compare(pa, pb feature.Projection) (Result, error) {
	euclidean, err := metric.Euclidean(pa.Vector, pb.Vector)
	if err != nil {
		return nil, fmt.Errorf("pairwise: %w", err)
	}
	manhattan, err := metric.Manhattan(pa.Vector, pb.Vector)
	if err != nil {
		return nil, fmt.Errorf("pairwise: %w", err)
	}
	cosine, err := metric.Cosine(pa.Vector, pb.Vector)
	if err != nil {
		return nil, fmt.Errorf("pairwise: %w", err)
	}
	return Result{
		metric.NameEuclidean:    euclidean,
		metric.NameManhattan:    manhattan,
		metric.NameHamming:      metric.Hamming(pa.Bits, pb.Bits),
		metric.NameJaccard:      metric.Jaccard(pa.Set, pb.Set),
		metric.NameSorensenDice: metric.SorensenDice(pa.Set, pb.Set),
		metric.NameCosine:       cosine,
	}, nil
}
