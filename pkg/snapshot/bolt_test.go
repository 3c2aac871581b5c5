package snapshot

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *BoltStore {
	t.Helper()
	store, err := OpenBolt(filepath.Join(t.TempDir(), "snapshots.db"))
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBoltSaveGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	rec := &Record{Seq: 7, Body: []byte(`{"kind":"element","tag":"div"}`)}
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("Save did not assign an ID")
	}
	if rec.TakenAt.IsZero() {
		t.Fatal("Save did not stamp TakenAt")
	}

	got, err := store.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Seq != 7 {
		t.Errorf("Seq = %d, want 7", got.Seq)
	}
	if string(got.Body) != string(rec.Body) {
		t.Errorf("Body = %q, want %q", got.Body, rec.Body)
	}
}

func TestBoltGetMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}
}

func TestBoltListNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := uint64(1); i <= 5; i++ {
		if err := store.Save(ctx, &Record{Seq: i, Body: []byte("x")}); err != nil {
			t.Fatalf("Save #%d: %v", i, err)
		}
	}

	recs, err := store.List(ctx, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("List returned %d records, want 3", len(recs))
	}
	want := []uint64{5, 4, 3}
	for i, rec := range recs {
		if rec.Seq != want[i] {
			t.Errorf("recs[%d].Seq = %d, want %d", i, rec.Seq, want[i])
		}
	}
}

func TestBoltCleanup(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	old := &Record{Seq: 1, TakenAt: time.Now().Add(-2 * time.Hour), Body: []byte("old")}
	fresh := &Record{Seq: 2, Body: []byte("fresh")}
	if err := store.Save(ctx, old); err != nil {
		t.Fatalf("Save old: %v", err)
	}
	if err := store.Save(ctx, fresh); err != nil {
		t.Fatalf("Save fresh: %v", err)
	}

	if err := store.Cleanup(ctx, time.Hour); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	if _, err := store.Get(ctx, old.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("old record still present: err = %v", err)
	}
	if _, err := store.Get(ctx, fresh.ID); err != nil {
		t.Errorf("fresh record removed: %v", err)
	}
}

func TestBoltClosed(t *testing.T) {
	store := openTestStore(t)
	store.Close()

	if err := store.Save(context.Background(), &Record{Body: []byte("x")}); !errors.Is(err, ErrClosed) {
		t.Errorf("Save after Close = %v, want ErrClosed", err)
	}
}
