package engine

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"github.com/viant/featsim/feature"
)

// EncodeVector encodes a projected vector into a BLOB: a little-endian
// sequence of IEEE 754 float64 values without a length prefix.
func EncodeVector(vec []float64) []byte {
	if len(vec) == 0 {
		return nil
	}
	b := make([]byte, len(vec)*8)
	for i, v := range vec {
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(v))
	}
	return b
}

// DecodeVector decodes a BLOB produced by EncodeVector.
func DecodeVector(b []byte) ([]float64, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("engine: invalid vector blob length %d (not multiple of 8)", len(b))
	}
	n := len(b) / 8
	vec := make([]float64, n)
	for i := 0; i < n; i++ {
		vec[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return vec, nil
}

// EncodeSet encodes a feature set as a JSON array of names in lexical order.
func EncodeSet(s feature.Set) string {
	data, _ := json.Marshal(s.Names())
	return string(data)
}

// DecodeSet decodes a JSON array of names produced by EncodeSet.
func DecodeSet(text string) (feature.Set, error) {
	var names []string
	if err := json.Unmarshal([]byte(text), &names); err != nil {
		return nil, fmt.Errorf("engine: invalid set %q: %w", text, err)
	}
	return feature.NewSet(names...), nil
}
