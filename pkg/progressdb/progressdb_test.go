package progressdb

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/function61/casebacklog/pkg/backlog"
	"github.com/function61/gokit/testing/assert"
)

func TestRecordAndList(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), Filename))
	assert.Ok(t, err)
	defer db.Close()

	t0 := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	assert.Ok(t, Record(db, &backlog.Stats{TotalCases: 10, DoneCases: 4, PendingCases: 6, UnknownDone: 1}, t0))
	assert.Ok(t, Record(db, &backlog.Stats{TotalCases: 10, DoneCases: 7, PendingCases: 3}, t0.Add(1*time.Hour)))

	snapshots, err := List(db)
	assert.Ok(t, err)

	assert.Assert(t, len(snapshots) == 2)
	assert.Assert(t, snapshots[0].DoneCases == 4)
	assert.Assert(t, snapshots[0].PendingCases == 6)
	assert.Assert(t, snapshots[0].UnknownDone == 1)
	assert.Assert(t, snapshots[1].DoneCases == 7)
	assert.Assert(t, snapshots[1].UnknownDone == 0)
	assert.Assert(t, snapshots[1].Timestamp.Equal(t0.Add(1*time.Hour)))
}

func TestListEmptyDatabase(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), Filename))
	assert.Ok(t, err)
	defer db.Close()

	snapshots, err := List(db)
	assert.Ok(t, err)

	assert.Assert(t, len(snapshots) == 0)
}
