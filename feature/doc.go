// Package feature defines the fixed, ordered feature schema and the projection
// of sparse name->weight records into the three representations used by the
// metrics:
//   - a dense vector in schema order
//   - a "has feature" bitmask, schema[0] being the most significant bit
//   - a "has feature" set of names
package feature
