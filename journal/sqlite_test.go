package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/mcsim/gbm"
	"github.com/rustyeddy/mcsim/stats"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func testRecord(id string, created time.Time) RunRecord {
	return RunRecord{
		RunID:     id,
		CreatedAt: created,
		Seed:      42,
		Workers:   4,
		Elapsed:   125 * time.Millisecond,
		Params: gbm.Params{
			InitialPrice: 100,
			Drift:        0.08,
			Volatility:   0.2,
			Horizon:      1,
			Steps:        252,
			Paths:        1000,
		},
		Summary: stats.Summary{
			Mean:   108.3,
			StdDev: 21.9,
			Min:    52.1,
			Max:    230.4,
			P5:     77.8,
			P95:    146.2,
		},
	}
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	require.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	row := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='runs'`)
	var name string
	require.NoError(t, row.Scan(&name))
	assert.Equal(t, "runs", name)
}

func TestSQLiteRecordAndGet(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := testRecord("RUN1", created)
	require.NoError(t, j.Record(rec))

	got, err := j.Get("RUN1")
	require.NoError(t, err)

	assert.Equal(t, rec.RunID, got.RunID)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.Equal(t, rec.Seed, got.Seed)
	assert.Equal(t, rec.Workers, got.Workers)
	assert.Equal(t, rec.Elapsed, got.Elapsed)
	assert.Equal(t, rec.Params, got.Params)
	assert.Equal(t, rec.Summary, got.Summary)
}

func TestSQLiteGetMissing(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	_, err := j.Get("NOPE")
	assert.ErrorContains(t, err, "not found")
}

func TestSQLiteListNewestFirst(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, j.Record(testRecord("A", base)))
	require.NoError(t, j.Record(testRecord("B", base.Add(time.Minute))))
	require.NoError(t, j.Record(testRecord("C", base.Add(2*time.Minute))))

	recs, err := j.List(0)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "C", recs[0].RunID)
	assert.Equal(t, "A", recs[2].RunID)

	recs, err = j.List(2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "C", recs[0].RunID)
}

func TestSQLiteDuplicateRunIDRejected(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	rec := testRecord("DUP", time.Now().UTC())
	require.NoError(t, j.Record(rec))
	assert.Error(t, j.Record(rec))
}
