package feature

import "errors"

var (
	// ErrEmptySchema is returned when a schema is created without any feature names.
	ErrEmptySchema = errors.New("feature: schema has no features")

	// ErrBlankFeature is returned when a schema name is empty or whitespace only.
	ErrBlankFeature = errors.New("feature: blank feature name")

	// ErrSchemaTooWide is returned when a schema has more features than the bitmask can hold.
	ErrSchemaTooWide = errors.New("feature: schema exceeds bitmask width")
)
