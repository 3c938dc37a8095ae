// Package pairwise projects two records through a shared schema, applies every
// metric to the matching representation and rounds the results for
// presentation.
package pairwise
