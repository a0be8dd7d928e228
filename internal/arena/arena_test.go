package arena

import "testing"

type linkRecord struct {
	url   string
	left  Index
	right Index
}

func TestAllocGrowthPreservesIndices(t *testing.T) {
	a := New[linkRecord](4)

	var indices []Index
	for i := 0; i < 10000; i++ {
		idx := a.Alloc()
		rec := a.Get(idx)
		rec.url = string(rune('a' + i%26))
		indices = append(indices, idx)
	}

	for i, idx := range indices {
		rec := a.Get(idx)
		want := string(rune('a' + i%26))
		if rec.url != want {
			t.Fatalf("index %d: got url %q, want %q", idx, rec.url, want)
		}
	}
}

func TestFreeAndReuse(t *testing.T) {
	a := New[linkRecord](4)

	i1 := a.Alloc()
	a.Get(i1).url = "first"
	a.Free(i1)

	if got := a.NrUsed(); got != 0 {
		t.Fatalf("NrUsed after free = %d, want 0", got)
	}

	i2 := a.Alloc()
	if i2 != i1 {
		t.Fatalf("expected freed slot to be reused, got new index %d vs freed %d", i2, i1)
	}
	if a.Get(i2).url != "" {
		t.Fatalf("reused slot not zeroed: %q", a.Get(i2).url)
	}
}

func TestClearAll(t *testing.T) {
	a := New[linkRecord](4)
	for i := 0; i < 5; i++ {
		a.Alloc()
	}
	a.ClearAll()
	if a.NrUsed() != 0 || a.Cap() != 0 {
		t.Fatalf("ClearAll did not reset arena: used=%d cap=%d", a.NrUsed(), a.Cap())
	}
}
