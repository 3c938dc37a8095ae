// Package report evaluates labelled record pairs and renders the rounded
// results as a console table or JSON.
package report
