package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) Record(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created_at, seed, workers, elapsed_ms,
		 initial_price, drift, volatility, horizon, steps, paths,
		 mean, std_dev, min, max, p5, p95)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.CreatedAt, r.Seed, r.Workers,
		float64(r.Elapsed)/float64(time.Millisecond),
		r.Params.InitialPrice, r.Params.Drift, r.Params.Volatility,
		r.Params.Horizon, r.Params.Steps, r.Params.Paths,
		r.Summary.Mean, r.Summary.StdDev, r.Summary.Min,
		r.Summary.Max, r.Summary.P5, r.Summary.P95,
	)
	return err
}

func (j *SQLite) Get(runID string) (RunRecord, error) {
	row := j.db.QueryRow(selectCols+` WHERE run_id = ?`, runID)
	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return RunRecord{}, fmt.Errorf("run %s not found", runID)
	}
	return r, err
}

// List returns the most recent runs first. limit <= 0 means no limit.
func (j *SQLite) List(limit int) ([]RunRecord, error) {
	q := selectCols + ` ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

const selectCols = `
	SELECT run_id, created_at, seed, workers, elapsed_ms,
	       initial_price, drift, volatility, horizon, steps, paths,
	       mean, std_dev, min, max, p5, p95
	FROM runs`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (RunRecord, error) {
	var r RunRecord
	var elapsedMs float64
	err := s.Scan(
		&r.RunID, &r.CreatedAt, &r.Seed, &r.Workers, &elapsedMs,
		&r.Params.InitialPrice, &r.Params.Drift, &r.Params.Volatility,
		&r.Params.Horizon, &r.Params.Steps, &r.Params.Paths,
		&r.Summary.Mean, &r.Summary.StdDev, &r.Summary.Min,
		&r.Summary.Max, &r.Summary.P5, &r.Summary.P95,
	)
	if err != nil {
		return RunRecord{}, err
	}
	r.Elapsed = time.Duration(elapsedMs * float64(time.Millisecond))
	return r, nil
}
