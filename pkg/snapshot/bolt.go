package snapshot

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketRecords = []byte("records")
	bucketByID    = []byte("by_id")
)

// BoltStore stores snapshots in a local bbolt database. Records are keyed
// by insertion order so List can walk newest-first with a reverse cursor;
// a secondary bucket maps ids to keys.
type BoltStore struct {
	db     *bolt.DB
	closed atomic.Bool
}

// OpenBolt opens (creating if needed) a snapshot database at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketRecords); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketByID)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("snapshot: init buckets: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Close closes the underlying database. Further calls fail with ErrClosed.
func (s *BoltStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

// Save implements Store.
func (s *BoltStore) Save(ctx context.Context, rec *Record) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if rec.ID == "" {
		rec.ID = newID()
	}
	if rec.TakenAt.IsZero() {
		rec.TakenAt = time.Now().UTC()
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("snapshot: encode record: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		records := tx.Bucket(bucketRecords)
		seq, err := records.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)

		if err := records.Put(key, body); err != nil {
			return err
		}
		return tx.Bucket(bucketByID).Put([]byte(rec.ID), key)
	})
}

// Get implements Store.
func (s *BoltStore) Get(ctx context.Context, id string) (*Record, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	var rec *Record
	err := s.db.View(func(tx *bolt.Tx) error {
		key := tx.Bucket(bucketByID).Get([]byte(id))
		if key == nil {
			return ErrNotFound
		}
		body := tx.Bucket(bucketRecords).Get(key)
		if body == nil {
			return ErrNotFound
		}
		rec = new(Record)
		return json.Unmarshal(body, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List implements Store.
func (s *BoltStore) List(ctx context.Context, limit int) ([]*Record, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	var out []*Record
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketRecords).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(out) >= limit {
				break
			}
			rec := new(Record)
			if err := json.Unmarshal(v, rec); err != nil {
				return fmt.Errorf("snapshot: decode record: %w", err)
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cleanup implements Store.
func (s *BoltStore) Cleanup(ctx context.Context, maxAge time.Duration) error {
	if s.closed.Load() {
		return ErrClosed
	}
	cutoff := time.Now().Add(-maxAge)
	return s.db.Update(func(tx *bolt.Tx) error {
		records := tx.Bucket(bucketRecords)
		byID := tx.Bucket(bucketByID)

		c := records.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			rec := new(Record)
			if err := json.Unmarshal(v, rec); err != nil {
				return fmt.Errorf("snapshot: decode record: %w", err)
			}
			if !rec.TakenAt.Before(cutoff) {
				// Keys are insertion-ordered; once we reach a fresh
				// record, the rest are fresh too.
				break
			}
			if err := c.Delete(); err != nil {
				return err
			}
			if err := byID.Delete([]byte(rec.ID)); err != nil {
				return err
			}
		}
		return nil
	})
}
