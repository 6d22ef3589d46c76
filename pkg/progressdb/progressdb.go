// Bolt-backed history of backlog progress: each recorded snapshot stores the
// case counts at a point in time, so long proof runs can be tracked.
package progressdb

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/boltdb/bolt"
	"github.com/function61/casebacklog/pkg/backlog"
)

const Filename = "progress.db"

var snapshotsBucket = []byte("snapshots")

type Snapshot struct {
	Timestamp    time.Time `json:"timestamp"`
	TotalCases   int       `json:"total_cases"`
	DoneCases    int       `json:"done_cases"`
	PendingCases int       `json:"pending_cases"`
	UnknownDone  int       `json:"unknown_done"`
}

func Open(filename string) (*bolt.DB, error) {
	return bolt.Open(filename, 0600, &bolt.Options{Timeout: 1 * time.Second})
}

func Record(db *bolt.DB, stats *backlog.Stats, now time.Time) error {
	return db.Update(func(tx *bolt.Tx) error {
		snapshots, err := tx.CreateBucketIfNotExists(snapshotsBucket)
		if err != nil {
			return err
		}

		serialized, err := json.Marshal(&Snapshot{
			Timestamp:    now,
			TotalCases:   stats.TotalCases,
			DoneCases:    stats.DoneCases,
			PendingCases: stats.PendingCases,
			UnknownDone:  stats.UnknownDone,
		})
		if err != nil {
			return err
		}

		// key is the big-endian nanosecond timestamp, so bucket iteration order
		// is recording order
		return snapshots.Put(itob(uint64(now.UnixNano())), serialized)
	})
}

// List returns all recorded snapshots, oldest first.
func List(db *bolt.DB) ([]Snapshot, error) {
	snapshots := []Snapshot{}

	if err := db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(snapshotsBucket)
		if bucket == nil { // nothing recorded yet
			return nil
		}

		return bucket.ForEach(func(key []byte, value []byte) error {
			snapshot := Snapshot{}
			if err := json.Unmarshal(value, &snapshot); err != nil {
				return err
			}

			snapshots = append(snapshots, snapshot)

			return nil
		})
	}); err != nil {
		return nil, err
	}

	return snapshots, nil
}

func itob(value uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, value)
	return b
}
