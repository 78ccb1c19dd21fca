// Package journal persists a record of every simulation run: the parameters,
// how long generation took, and the terminal price statistics.
package journal

import (
	"time"

	"github.com/rustyeddy/mcsim/gbm"
	"github.com/rustyeddy/mcsim/stats"
)

// RunRecord is one completed simulation run.
type RunRecord struct {
	RunID     string
	CreatedAt time.Time
	Seed      int64
	Workers   int
	Elapsed   time.Duration
	Params    gbm.Params
	Summary   stats.Summary
}

type Journal interface {
	Record(RunRecord) error
	Get(runID string) (RunRecord, error)
	List(limit int) ([]RunRecord, error)
	Close() error
}
