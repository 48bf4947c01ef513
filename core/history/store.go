package history

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var runsBucket = []byte("runs")

// ErrNotFound is returned by Get for an unknown run id.
var ErrNotFound = errors.New("run not found")

// Record is the stored outcome of one run.
type Record struct {
	RunID     string        `msgpack:"run_id"`
	StartedAt time.Time     `msgpack:"started_at"`
	Duration  time.Duration `msgpack:"duration"`

	Left    string `msgpack:"left"`
	Right   string `msgpack:"right"`
	KeySpec string `msgpack:"key_spec"`

	Same        int `msgpack:"same"`
	LeftOnly    int `msgpack:"left_only"`
	RightOnly   int `msgpack:"right_only"`
	Differences int `msgpack:"differences"`

	// Failure is the failure kind of an aborted run, Error its message.
	Failure string `msgpack:"failure,omitempty"`
	Error   string `msgpack:"error,omitempty"`
}

// Succeeded reports whether the run finished.
func (r Record) Succeeded() bool { return r.Error == "" }

// Store is a bbolt backed run history.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the history file at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open history %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare history: %w", err)
	}

	return &Store{db: db}, nil
}

// recordKey orders records by start time, then run id.
func recordKey(r Record) []byte {
	key := make([]byte, 8, 8+len(r.RunID))
	binary.BigEndian.PutUint64(key, uint64(r.StartedAt.UnixNano()))
	return append(key, r.RunID...)
}

// Append stores r.
func (s *Store) Append(r Record) error {
	if r.RunID == "" {
		return errors.New("record has no run id")
	}
	value, err := msgpack.Marshal(&r)
	if err != nil {
		return fmt.Errorf("failed to encode run %s: %w", r.RunID, err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(runsBucket).Put(recordKey(r), value)
	})
}

// List returns up to limit records, newest first. A limit of 0 returns all.
func (s *Store) List(limit int) ([]Record, error) {
	var records []Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(runsBucket).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var r Record
			if err := msgpack.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("failed to decode run at %x: %w", k, err)
			}
			records = append(records, r)
			if limit > 0 && len(records) == limit {
				break
			}
		}
		return nil
	})
	return records, err
}

// Get returns the record of runID.
func (s *Store) Get(runID string) (*Record, error) {
	var found *Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			if found != nil || len(k) < 8 || string(k[8:]) != runID {
				return nil
			}
			var r Record
			if err := msgpack.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("failed to decode run %s: %w", runID, err)
			}
			found = &r
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
	}
	return found, nil
}

// Close releases the file lock.
func (s *Store) Close() error {
	return s.db.Close()
}
