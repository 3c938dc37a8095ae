// Package engine provides helpers for working with the modernc.org/sqlite
// driver: opening connections and registering the feature metrics as SQL
// scalar functions so projected records held in SQL can be compared in
// queries.
package engine
