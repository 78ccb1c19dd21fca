package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	seed INTEGER NOT NULL,
	workers INTEGER NOT NULL,
	elapsed_ms REAL NOT NULL,
	initial_price REAL NOT NULL,
	drift REAL NOT NULL,
	volatility REAL NOT NULL,
	horizon REAL NOT NULL,
	steps INTEGER NOT NULL,
	paths INTEGER NOT NULL,
	mean REAL NOT NULL,
	std_dev REAL NOT NULL,
	min REAL NOT NULL,
	max REAL NOT NULL,
	p5 REAL NOT NULL,
	p95 REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`
