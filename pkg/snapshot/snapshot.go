// Package snapshot persists serialized tree snapshots captured by the
// inspector, giving a render-pass history that survives the process. Two
// backends are provided: a local bbolt store and an S3 store.
package snapshot

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

// ErrNotFound is returned when a snapshot doesn't exist.
var ErrNotFound = errors.New("snapshot: not found")

// ErrClosed is returned when the store has been closed.
var ErrClosed = errors.New("snapshot: store closed")

// Record is one archived tree snapshot.
type Record struct {
	// ID is the unique identifier for this snapshot.
	ID string `json:"id"`

	// Seq is the render pass sequence the snapshot was taken at.
	Seq uint64 `json:"seq"`

	// TakenAt is when the snapshot was captured.
	TakenAt time.Time `json:"taken_at"`

	// Body is the serialized tree, typically JSON.
	Body []byte `json:"body"`
}

// Store is the interface for snapshot storage backends.
type Store interface {
	// Save persists the record. A record with an empty ID is assigned one.
	Save(ctx context.Context, rec *Record) error

	// Get retrieves a snapshot by id.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]*Record, error)

	// Cleanup removes snapshots older than maxAge.
	Cleanup(ctx context.Context, maxAge time.Duration) error
}

// newID returns a random snapshot id.
func newID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
