package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/viant/featsim/feature"
)

//go:embed sample.yaml
var sampleYAML []byte

var (
	// ErrNoRecords is returned when a data set defines no records.
	ErrNoRecords = errors.New("config: no records")

	// ErrDuplicateLabel is returned when two records share a label.
	ErrDuplicateLabel = errors.New("config: duplicate record label")

	// ErrUnknownLabel is returned when a pair references a label that is not defined.
	ErrUnknownLabel = errors.New("config: unknown record label")
)

// DataSet is the YAML document describing what to compare. Pairs lists the
// label pairs to compare; when empty, every unordered pair of records is
// compared in record order.
type DataSet struct {
	Features []string    `yaml:"features" json:"features"`
	Records  []RecordDef `yaml:"records" json:"records"`
	Pairs    [][2]string `yaml:"pairs,omitempty" json:"pairs,omitempty"`

	schema *feature.Schema
}

// RecordDef is one labelled record.
type RecordDef struct {
	Label   string         `yaml:"label" json:"label"`
	Weights feature.Record `yaml:"weights" json:"weights"`
}

// Pair is a resolved pair of records to compare.
type Pair struct {
	A, B RecordDef
}

// Label formats the pair as "A & B".
func (p Pair) Label() string { return p.A.Label + " & " + p.B.Label }

// Load reads and validates a data set from a YAML (or JSON) file.
func Load(path string) (*DataSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a data set.
func Parse(data []byte) (*DataSet, error) {
	var ds DataSet
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Sample returns the built-in fruit preference data set.
func Sample() *DataSet {
	ds, err := Parse(sampleYAML)
	if err != nil {
		panic(err)
	}
	return ds
}

// Validate builds the schema and checks labels and pairs.
func (d *DataSet) Validate() error {
	schema, err := feature.NewSchema(d.Features...)
	if err != nil {
		return fmt.Errorf("config: features: %w", err)
	}
	if len(d.Records) == 0 {
		return ErrNoRecords
	}
	seen := make(map[string]bool, len(d.Records))
	for i := range d.Records {
		label := strings.TrimSpace(d.Records[i].Label)
		if label == "" {
			return fmt.Errorf("config: record %d has no label", i)
		}
		if seen[label] {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
		seen[label] = true
		d.Records[i].Label = label
	}
	for _, p := range d.Pairs {
		for _, label := range p {
			if !seen[strings.TrimSpace(label)] {
				return fmt.Errorf("%w: %q", ErrUnknownLabel, label)
			}
		}
	}
	d.schema = schema
	return nil
}

// Schema returns the feature schema; Validate must have succeeded.
func (d *DataSet) Schema() *feature.Schema { return d.schema }

// Record returns the record with the given label.
func (d *DataSet) Record(label string) (RecordDef, bool) {
	label = strings.TrimSpace(label)
	for _, r := range d.Records {
		if r.Label == label {
			return r, true
		}
	}
	return RecordDef{}, false
}

// ResolvePairs returns the pairs to compare: the configured ones, or every
// unordered pair in record order.
func (d *DataSet) ResolvePairs() []Pair {
	if len(d.Pairs) > 0 {
		out := make([]Pair, 0, len(d.Pairs))
		for _, p := range d.Pairs {
			a, _ := d.Record(p[0])
			b, _ := d.Record(p[1])
			out = append(out, Pair{A: a, B: b})
		}
		return out
	}
	n := len(d.Records)
	out := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Pair{A: d.Records[i], B: d.Records[j]})
		}
	}
	return out
}
