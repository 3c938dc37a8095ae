package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite database using the modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./db.sqlite". Call
// RegisterMetricFunctions before the first connection is opened.
func Open(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }

// OpenMemory opens an in-memory database. Every SQLite connection to
// ":memory:" sees its own database, so the pool is limited to a single
// connection.
func OpenMemory() (*sql.DB, error) {
	db, err := Open(":memory:")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
