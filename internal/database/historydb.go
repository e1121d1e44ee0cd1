package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/passwdgen/internal/quality"
)

// HistoryDB provides SQLite-based storage for RNG quality test runs.
// Keeping past runs lets users compare statistics over time and spot
// drift in the operating system's randomness source.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB in the specified directory.
// If CreateIfNotExists is false and the database does not exist, an
// error is returned instead of creating an empty history.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "passwdgen.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s: %w", dbPath, os.ErrNotExist)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite DSN: mode=rw opens existing files only,
	// mode=rwc additionally allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports one writer; a single pooled connection avoids
	// SQLITE_BUSY churn for this write-light workload.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// Path returns the database file path.
func (hdb *HistoryDB) Path() string {
	return hdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Quality runs store the statistics of each RNG quality test
	CREATE TABLE IF NOT EXISTS quality_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		sample_size INTEGER NOT NULL,
		mean REAL NOT NULL,
		stddev REAL NOT NULL,
		variance REAL NOT NULL,
		elapsed_ns INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_quality_runs_created ON quality_runs(created_at);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// QualityRun is a stored quality test run.
type QualityRun struct {
	// ID is the database row identifier.
	ID int64

	// Result holds the run's statistics.
	Result quality.Result
}

// SaveQualityResult stores one quality test result and returns its row ID.
func (hdb *HistoryDB) SaveQualityResult(ctx context.Context, result *quality.Result) (int64, error) {
	createdAt := result.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := hdb.db.ExecContext(ctx,
		`INSERT INTO quality_runs (created_at, sample_size, mean, stddev, variance, elapsed_ns)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		createdAt.UTC(), result.SampleSize, result.Mean, result.StdDev, result.Variance, result.Elapsed.Nanoseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save quality result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted row id: %w", err)
	}
	return id, nil
}

// ListQualityRuns returns stored runs, newest first, up to limit.
// A limit of 0 or less returns all runs.
func (hdb *HistoryDB) ListQualityRuns(ctx context.Context, limit int) ([]QualityRun, error) {
	query := `SELECT id, created_at, sample_size, mean, stddev, variance, elapsed_ns
	          FROM quality_runs ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quality runs: %w", err)
	}
	defer rows.Close()

	var runs []QualityRun
	for rows.Next() {
		var run QualityRun
		var elapsedNS int64
		if err := rows.Scan(&run.ID, &run.Result.CreatedAt, &run.Result.SampleSize,
			&run.Result.Mean, &run.Result.StdDev, &run.Result.Variance, &elapsedNS); err != nil {
			return nil, fmt.Errorf("failed to scan quality run: %w", err)
		}
		run.Result.Elapsed = time.Duration(elapsedNS)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quality runs: %w", err)
	}

	return runs, nil
}

// LatestQualityRun returns the most recent stored run, or nil when the
// history is empty.
func (hdb *HistoryDB) LatestQualityRun(ctx context.Context) (*QualityRun, error) {
	runs, err := hdb.ListQualityRuns(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}
