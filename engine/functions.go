package engine

import (
	"database/sql/driver"
	"fmt"
	"math"
	"sync"

	sqlite "modernc.org/sqlite"

	"github.com/viant/featsim/feature"
	"github.com/viant/featsim/metric"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterMetricFunctions registers the metric SQL functions with the driver
// so they are available on connections opened after this call:
//
//	feat_euclidean(vector, vector), feat_manhattan(vector, vector),
//	feat_cosine(vector, vector)  -- BLOBs from EncodeVector
//	feat_hamming(bits, bits)     -- INTEGER bitmasks
//	feat_jaccard(set, set), feat_dice(set, set) -- TEXT from EncodeSet
//
// A NULL argument or a NaN result yields NULL. Calling it again is a no-op.
func RegisterMetricFunctions() error {
	registerOnce.Do(func() {
		fns := []struct {
			name string
			fn   func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error)
		}{
			{"feat_euclidean", vectorFunc("feat_euclidean", metric.Euclidean)},
			{"feat_manhattan", vectorFunc("feat_manhattan", metric.Manhattan)},
			{"feat_cosine", vectorFunc("feat_cosine", metric.Cosine)},
			{"feat_hamming", hammingImpl},
			{"feat_jaccard", setFunc("feat_jaccard", metric.Jaccard)},
			{"feat_dice", setFunc("feat_dice", metric.SorensenDice)},
		}
		for _, f := range fns {
			if err := sqlite.RegisterDeterministicScalarFunction(f.name, 2, f.fn); err != nil {
				registerErr = fmt.Errorf("engine: register %s: %w", f.name, err)
				return
			}
		}
	})
	return registerErr
}

func asVector(arg driver.Value) ([]float64, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return DecodeVector(v)
	default:
		return nil, fmt.Errorf("engine: unsupported argument type %T for vector; want BLOB", arg)
	}
}

func asSet(arg driver.Value) (feature.Set, bool, error) {
	switch v := arg.(type) {
	case nil:
		return nil, false, nil
	case string:
		s, err := DecodeSet(v)
		return s, err == nil, err
	case []byte:
		s, err := DecodeSet(string(v))
		return s, err == nil, err
	default:
		return nil, false, fmt.Errorf("engine: unsupported argument type %T for set; want TEXT", arg)
	}
}

func asBits(arg driver.Value) (uint64, bool, error) {
	switch v := arg.(type) {
	case nil:
		return 0, false, nil
	case int64:
		// a 64-feature mask with the top bit set is stored as a negative INTEGER
		return uint64(v), true, nil
	default:
		return 0, false, fmt.Errorf("engine: unsupported argument type %T for bitmask; want INTEGER", arg)
	}
}

func result(v float64) driver.Value {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

func vectorFunc(name string, fn func(a, b []float64) (float64, error)) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s: expected 2 arguments, got %d", name, len(args))
		}
		if args[0] == nil || args[1] == nil {
			return nil, nil
		}
		a, err := asVector(args[0])
		if err != nil {
			return nil, err
		}
		b, err := asVector(args[1])
		if err != nil {
			return nil, err
		}
		v, err := fn(a, b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return result(v), nil
	}
}

func setFunc(name string, fn func(a, b feature.Set) float64) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s: expected 2 arguments, got %d", name, len(args))
		}
		a, okA, err := asSet(args[0])
		if err != nil {
			return nil, err
		}
		b, okB, err := asSet(args[1])
		if err != nil {
			return nil, err
		}
		if !okA || !okB {
			return nil, nil
		}
		return result(fn(a, b)), nil
	}
}

func hammingImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("feat_hamming: expected 2 arguments, got %d", len(args))
	}
	a, okA, err := asBits(args[0])
	if err != nil {
		return nil, err
	}
	b, okB, err := asBits(args[1])
	if err != nil {
		return nil, err
	}
	if !okA || !okB {
		return nil, nil
	}
	return int64(metric.Hamming(a, b)), nil
}
