// Package metric implements the six similarity and distance functions applied
// to projected records: euclidean, manhattan and cosine similarity over
// vectors, hamming over bitmasks, and jaccard and Sorensen-Dice over sets.
//
// Vector functions return ErrDimensionMismatch when their inputs differ in
// length. Degenerate inputs (two empty sets, a zero-magnitude vector) yield
// NaN rather than an error.
package metric
