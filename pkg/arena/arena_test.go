package arena

import "testing"

type payload struct {
	name  string
	count int
}

func TestAllocStablePointers(t *testing.T) {
	a := New()

	// Allocate across several blocks and verify no pointer is invalidated
	// by later growth.
	ptrs := make([]*payload, 0, blockLen*3+5)
	for i := 0; i < blockLen*3+5; i++ {
		ptrs = append(ptrs, Alloc(a, payload{name: "p", count: i}))
	}

	for i, p := range ptrs {
		if p.count != i {
			t.Fatalf("value at %d = %d, want %d", i, p.count, i)
		}
	}
}

func TestAllocDistinctAddresses(t *testing.T) {
	a := New()

	seen := make(map[*payload]bool)
	for i := 0; i < 100; i++ {
		p := Alloc(a, payload{count: i})
		if seen[p] {
			t.Fatal("overlapping allocations alias")
		}
		seen[p] = true
	}
}

func TestSliceCopiesAndCaps(t *testing.T) {
	a := New()

	src := []int{1, 2, 3}
	run := Slice(a, src...)

	if len(run) != 3 || cap(run) != 3 {
		t.Fatalf("len=%d cap=%d, want 3/3", len(run), cap(run))
	}

	src[0] = 99
	if run[0] != 1 {
		t.Error("arena run aliases the source slice")
	}
}

func TestSliceEmpty(t *testing.T) {
	a := New()
	if run := Slice[int](a); run != nil {
		t.Errorf("empty slice = %v, want nil", run)
	}
}

func TestSliceLargerThanBlock(t *testing.T) {
	a := New()

	big := make([]int, blockLen*2)
	for i := range big {
		big[i] = i
	}
	run := Slice(a, big...)

	if len(run) != len(big) {
		t.Fatalf("len = %d, want %d", len(run), len(big))
	}
	for i, v := range run {
		if v != i {
			t.Fatalf("run[%d] = %d", i, v)
		}
	}
}

func TestMixedTypes(t *testing.T) {
	a := New()

	s := Alloc(a, "hello")
	n := Alloc(a, 42)
	p := Alloc(a, payload{name: "x"})

	if *s != "hello" || *n != 42 || p.name != "x" {
		t.Error("per-type slabs interfered with each other")
	}
	if got := a.Stats().Types; got != 3 {
		t.Errorf("Stats().Types = %d, want 3", got)
	}
}

func TestReleaseResetsAndReuses(t *testing.T) {
	a := New()

	for i := 0; i < 10; i++ {
		Alloc(a, payload{count: i})
	}
	if got := a.Stats().Objects; got != 10 {
		t.Fatalf("Objects = %d, want 10", got)
	}

	a.Release()
	if got := a.Stats().Objects; got != 0 {
		t.Errorf("Objects after Release = %d, want 0", got)
	}

	// The arena is usable again after Release.
	p := Alloc(a, payload{count: 7})
	if p.count != 7 {
		t.Error("allocation after Release returned wrong value")
	}
}

func TestReleaseZeroesBlocks(t *testing.T) {
	a := New()

	p := Alloc(a, payload{name: "live", count: 1})
	a.Release()

	// The old pointer is invalid by contract; observing zeroed memory here
	// documents that Release drops references for the collector.
	if p.name != "" || p.count != 0 {
		t.Errorf("released block not cleared: %+v", *p)
	}
}

func BenchmarkAlloc(b *testing.B) {
	a := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Alloc(a, payload{count: i})
		if i%1024 == 1023 {
			a.Release()
		}
	}
}
