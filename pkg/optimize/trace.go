package optimize

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// TraceRecorder receives the swarm's global best after every iteration.
type TraceRecorder interface {
	RecordIteration(iter int, bestScore float64, bestPos []float64) error
}

// SQLiteTrace persists swarm iterations to a SQLite database, one row per
// iteration, for offline inspection of an optimization run.
type SQLiteTrace struct {
	db *sql.DB
}

// OpenTrace opens (or creates) a trace database at the given path.
func OpenTrace(path string) (*SQLiteTrace, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening trace db: %w", err)
	}
	db.SetMaxOpenConns(1)

	const schema = `CREATE TABLE IF NOT EXISTS swarm_iterations (
		iter INTEGER NOT NULL,
		best_score REAL NOT NULL,
		best_positions TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating trace schema: %w", err)
	}
	return &SQLiteTrace{db: db}, nil
}

// RecordIteration appends one iteration row.
func (t *SQLiteTrace) RecordIteration(iter int, bestScore float64, bestPos []float64) error {
	positions, err := json.Marshal(bestPos)
	if err != nil {
		return fmt.Errorf("encoding trace positions: %w", err)
	}
	_, err = t.db.Exec(
		`INSERT INTO swarm_iterations (iter, best_score, best_positions) VALUES (?, ?, ?)`,
		iter, bestScore, string(positions),
	)
	if err != nil {
		return fmt.Errorf("recording iteration %d: %w", iter, err)
	}
	return nil
}

// Iterations reads back every recorded iteration in order.
func (t *SQLiteTrace) Iterations() ([]TraceRow, error) {
	rows, err := t.db.Query(`SELECT iter, best_score, best_positions FROM swarm_iterations ORDER BY iter`)
	if err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	defer rows.Close()

	var out []TraceRow
	for rows.Next() {
		var r TraceRow
		var positions string
		if err := rows.Scan(&r.Iter, &r.BestScore, &positions); err != nil {
			return nil, fmt.Errorf("scanning trace row: %w", err)
		}
		if err := json.Unmarshal([]byte(positions), &r.BestPos); err != nil {
			return nil, fmt.Errorf("decoding trace positions: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// TraceRow is one recorded swarm iteration.
type TraceRow struct {
	Iter      int
	BestScore float64
	BestPos   []float64
}

// Close releases the underlying database handle.
func (t *SQLiteTrace) Close() error {
	return t.db.Close()
}
