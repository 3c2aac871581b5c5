package arena

import (
	"reflect"
	"sync"
)

// blockLen is the number of objects per slab block. Blocks of exactly this
// capacity are recycled through the per-type pools; larger one-off blocks
// are left to the garbage collector.
const blockLen = 64

// Arena is a region allocator. All objects allocated from it remain valid
// until Release, at which point the whole region is retired as a unit.
type Arena struct {
	slabs   map[reflect.Type]region
	objects int
}

// region is the untyped view of a slab, used for bulk release.
type region interface {
	reset()
	blockCount() int
}

// New creates an empty arena.
func New() *Arena {
	return &Arena{slabs: make(map[reflect.Type]region)}
}

// Alloc copies v into the arena and returns a pointer valid until Release.
func Alloc[T any](a *Arena, v T) *T {
	s := slabFor[T](a)
	p := s.alloc(v)
	a.objects++
	return p
}

// Slice copies items into a contiguous arena-owned run and returns it.
// The returned slice has len == cap, so appending to it never overwrites
// a neighboring allocation.
func Slice[T any](a *Arena, items ...T) []T {
	if len(items) == 0 {
		return nil
	}
	s := slabFor[T](a)
	run := s.allocRun(items)
	a.objects += len(items)
	return run
}

// Release retires every allocation at once. Blocks are zeroed, so the
// collector can reclaim anything the arena was keeping alive, and returned
// to their type's pool for the next pass. Pointers obtained before Release
// must not be used afterwards; the memory will be reused.
func (a *Arena) Release() {
	for _, s := range a.slabs {
		s.reset()
	}
	a.objects = 0
}

// Stats describes the arena's current occupancy.
type Stats struct {
	Objects int // values allocated since the last Release
	Blocks  int // slab blocks currently held
	Types   int // distinct types with a live slab
}

// Stats returns the arena's current occupancy.
func (a *Arena) Stats() Stats {
	st := Stats{Objects: a.objects, Types: len(a.slabs)}
	for _, s := range a.slabs {
		st.Blocks += s.blockCount()
	}
	return st
}

// slab holds the blocks for one concrete type.
type slab[T any] struct {
	full []([]T) // filled blocks
	cur  []T     // active block, bump-appended
	pool *sync.Pool
}

func slabFor[T any](a *Arena) *slab[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if s, ok := a.slabs[t]; ok {
		return s.(*slab[T])
	}
	s := &slab[T]{pool: poolFor[T](t)}
	a.slabs[t] = s
	return s
}

func (s *slab[T]) alloc(v T) *T {
	if cap(s.cur)-len(s.cur) < 1 {
		s.grow(1)
	}
	s.cur = append(s.cur, v)
	return &s.cur[len(s.cur)-1]
}

func (s *slab[T]) allocRun(items []T) []T {
	if cap(s.cur)-len(s.cur) < len(items) {
		s.grow(len(items))
	}
	start := len(s.cur)
	s.cur = append(s.cur, items...)
	end := len(s.cur)
	return s.cur[start:end:end]
}

// grow pushes the active block aside and installs one with room for at
// least n values. append never reallocates within a block, so addresses
// handed out by alloc stay stable.
func (s *slab[T]) grow(n int) {
	if s.cur != nil {
		s.full = append(s.full, s.cur)
	}
	if n <= blockLen {
		s.cur = s.pool.Get().([]T)
	} else {
		s.cur = make([]T, 0, n)
	}
}

func (s *slab[T]) reset() {
	for _, b := range s.full {
		s.recycle(b)
	}
	s.full = s.full[:0]
	if s.cur != nil {
		s.recycle(s.cur)
		s.cur = nil
	}
}

func (s *slab[T]) recycle(b []T) {
	b = b[:cap(b)]
	clear(b)
	if cap(b) == blockLen {
		s.pool.Put(b[:0])
	}
}

func (s *slab[T]) blockCount() int {
	n := len(s.full)
	if s.cur != nil {
		n++
	}
	return n
}

// pools shares recycled blocks between arenas of the same process, keyed by
// element type.
var pools sync.Map // reflect.Type -> *sync.Pool

func poolFor[T any](t reflect.Type) *sync.Pool {
	if p, ok := pools.Load(t); ok {
		return p.(*sync.Pool)
	}
	p := &sync.Pool{New: func() any { return make([]T, 0, blockLen) }}
	actual, _ := pools.LoadOrStore(t, p)
	return actual.(*sync.Pool)
}
