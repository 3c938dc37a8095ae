package engine

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/viant/featsim/feature"
)

const recordsSchema = `
CREATE TABLE IF NOT EXISTS records (
    label  TEXT PRIMARY KEY,
    vector BLOB,
    bits   INTEGER,
    feats  TEXT
);
`

// Labeled is a record with its label.
type Labeled struct {
	Label  string
	Record feature.Record
}

// EnsureSchema creates the records table if it does not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, recordsSchema)
	return err
}

// LoadRecords projects records through schema and inserts the three
// representations into the records table in a single transaction, so the
// feat_* functions can be applied to them.
func LoadRecords(ctx context.Context, db *sql.DB, schema *feature.Schema, records []Labeled) error {
	if db == nil {
		return fmt.Errorf("engine: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records(label, vector, bits, feats) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if r.Label == "" {
			return fmt.Errorf("engine: record label must be set")
		}
		p := schema.Project(r.Record)
		if _, err := stmt.ExecContext(ctx, r.Label, EncodeVector(p.Vector), int64(p.Bits), EncodeSet(p.Set)); err != nil {
			return fmt.Errorf("engine: insert %q: %w", r.Label, err)
		}
	}
	return tx.Commit()
}
