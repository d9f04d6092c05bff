package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"MoveRadar/internal/model"
)

// SQLiteRecorder persists scan history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the scanner writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_runs (
			id            TEXT PRIMARY KEY,
			timestamp     INTEGER NOT NULL,
			scan_date     TEXT,
			min_pct       REAL,
			max_pct       REAL,
			bar_interval  TEXT,
			universe_size INTEGER,
			matched       INTEGER,
			duration_ms   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON scan_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS movers (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id       TEXT NOT NULL,
			symbol       TEXT NOT NULL,
			movement_pct REAL,
			open         REAL,
			high         REAL,
			low          REAL,
			close        REAL,
			sector       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_movers_run ON movers(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordScan writes one scan run and its matched movers in a transaction.
func (r *SQLiteRecorder) RecordScan(result *model.ScanResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	duration := result.FinishedAt.Sub(result.StartedAt).Milliseconds()
	if _, err := tx.Exec(`INSERT INTO scan_runs
		(id, timestamp, scan_date, min_pct, max_pct, bar_interval, universe_size, matched, duration_ms)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		result.RunID, time.Now().Unix(), result.Date,
		result.MinPct, result.MaxPct, string(result.Interval),
		result.UniverseSize, len(result.Records), duration,
	); err != nil {
		return err
	}

	for _, rec := range result.Records {
		if _, err := tx.Exec(`INSERT INTO movers
			(run_id, symbol, movement_pct, open, high, low, close, sector)
			VALUES (?,?,?,?,?,?,?,?)`,
			result.RunID, rec.Symbol, rec.MovementPct,
			rec.Open, rec.High, rec.Low, rec.Close, rec.Sector,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
