// Package recorder persists the opaque bytes of every PDU the relay
// handles — timestamp, direction, and raw wire bytes only, no decoded
// fields — for later replay or inspection. It uses
// github.com/glebarez/go-sqlite, the pure-Go, CGO-free database/sql
// driver the rest of this module's ecosystem stack reaches for instead
// of cgo-backed mattn/go-sqlite3, registered under the driver name
// "sqlite".
package recorder

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

// Direction distinguishes which side of the relay a captured PDU
// crossed.
type Direction uint8

const (
	DirectionLegacyToCompressed Direction = iota
	DirectionCompressedToLegacy
)

func (d Direction) String() string {
	if d == DirectionCompressedToLegacy {
		return "compressed_to_legacy"
	}

	return "legacy_to_compressed"
}

// Entry is one captured PDU crossing.
type Entry struct {
	At        time.Time
	Direction Direction
	PduType   uint8
	Raw       []byte
}

// Recorder persists Entry values to a SQLite database.
type Recorder struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures its schema exists.
func Open(ctx context.Context, path string) (*Recorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("recorder: open %s: %w", path, err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS pdu_log (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	at        INTEGER NOT NULL,
	direction INTEGER NOT NULL,
	pdu_type  INTEGER NOT NULL,
	raw       BLOB NOT NULL
)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("recorder: create schema: %w", err)
	}

	return &Recorder{db: db}, nil
}

// Close closes the underlying database handle.
func (r *Recorder) Close() error {
	return r.db.Close()
}

// Capture persists one Entry.
func (r *Recorder) Capture(ctx context.Context, e Entry) error {
	const insert = `INSERT INTO pdu_log (at, direction, pdu_type, raw) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, insert, e.At.UnixNano(), uint8(e.Direction), e.PduType, e.Raw)
	if err != nil {
		return fmt.Errorf("recorder: capture: %w", err)
	}

	return nil
}

// Replay returns every Entry recorded at or after since, ordered
// oldest first. The returned sequence stops early and yields the
// iteration error if a row fails to scan.
func (r *Recorder) Replay(ctx context.Context, since time.Time) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		const query = `SELECT at, direction, pdu_type, raw FROM pdu_log WHERE at >= ? ORDER BY at ASC`

		rows, err := r.db.QueryContext(ctx, query, since.UnixNano())
		if err != nil {
			yield(Entry{}, fmt.Errorf("recorder: replay: %w", err))

			return
		}
		defer rows.Close()

		for rows.Next() {
			var (
				atNano    int64
				direction uint8
				pduType   uint8
				raw       []byte
			)
			if err := rows.Scan(&atNano, &direction, &pduType, &raw); err != nil {
				yield(Entry{}, fmt.Errorf("recorder: scan: %w", err))

				return
			}

			e := Entry{
				At:        time.Unix(0, atNano),
				Direction: Direction(direction),
				PduType:   pduType,
				Raw:       raw,
			}
			if !yield(e, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(Entry{}, fmt.Errorf("recorder: rows: %w", err))
		}
	}
}
