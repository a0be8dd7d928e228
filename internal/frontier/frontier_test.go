package frontier

import (
	"fmt"
	"testing"

	"github.com/ossreap/reaper/internal/urlutil"
)

func TestInsertRejectsDuplicates(t *testing.T) {
	f := New(4, Filling)

	if !f.Insert("http://t.test/a") {
		t.Fatal("first insert should succeed")
	}
	if f.Insert("http://t.test/a") {
		t.Fatal("duplicate insert should be rejected")
	}
	if f.Insert("") {
		t.Fatal("empty URL should be rejected")
	}
	if f.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", f.Len())
	}
}

func TestInsertManyUniqueKeysAllReachable(t *testing.T) {
	f := New(16, Filling)

	urls := make([]string, 0, 10000)
	for i := 0; i < 10000; i++ {
		urls = append(urls, fmt.Sprintf("http://t.test/%06d", i))
	}
	for _, u := range urls {
		if !f.Insert(u) {
			t.Fatalf("insert of %q unexpectedly rejected", u)
		}
	}
	for _, u := range urls {
		if !f.Contains(u) {
			t.Fatalf("url %q not reachable after bulk insert", u)
		}
	}
}

func TestGenerationPartition(t *testing.T) {
	pair := NewPair(4)

	if pair.Draining().State() == pair.Filling().State() {
		t.Fatal("draining and filling must never share a state")
	}
	pair.SwapGenerations()
	if pair.Draining().State() == pair.Filling().State() {
		t.Fatal("swap must preserve the draining/filling partition")
	}
}

func TestAcceptRejectsPolicyViolations(t *testing.T) {
	draining := New(4, Draining)
	ctx := urlutil.HTTPContext{Scheme: "http", Host: "t.test"}

	cases := map[string]bool{
		"javascript:void(0)":       false,
		"http://t.test/ok":         true,
		"http://other.test/x":      false, // cross-domain disallowed by default
		"http://t.test/a#fragment": false,
		"http://t.test/lib.dll":    false,
	}
	for url, want := range cases {
		got := Accept(draining, AcceptParams{CandidateURL: url, Ctx: ctx, ArchiveRoot: t.TempDir()})
		if got != want {
			t.Errorf("Accept(%q) = %v, want %v", url, got, want)
		}
	}
}

func TestAcceptRejectsDuplicateOfDraining(t *testing.T) {
	draining := New(4, Draining)
	draining.Insert("http://t.test/seen")
	ctx := urlutil.HTTPContext{Scheme: "http", Host: "t.test"}

	if Accept(draining, AcceptParams{CandidateURL: "http://t.test/seen", Ctx: ctx, ArchiveRoot: t.TempDir()}) {
		t.Fatal("candidate already in draining frontier should be rejected")
	}
}

func TestAcceptHandlesNilDraining(t *testing.T) {
	ctx := urlutil.HTTPContext{Scheme: "http", Host: "t.test"}
	if !Accept(nil, AcceptParams{CandidateURL: "http://t.test/ok", Ctx: ctx, ArchiveRoot: t.TempDir()}) {
		t.Fatal("nil draining frontier should not block acceptance")
	}
}

func TestTeardownFreesArena(t *testing.T) {
	f := New(4, Draining)
	for i := 0; i < 50; i++ {
		f.Insert(fmt.Sprintf("http://t.test/%d", i))
	}
	f.Teardown()
	if f.Len() != 0 {
		t.Fatalf("Len() after Teardown = %d, want 0", f.Len())
	}
}
