package linkrewrite

import (
	"testing"

	"github.com/ossreap/reaper/internal/buf"
	"github.com/ossreap/reaper/internal/frontier"
	"github.com/ossreap/reaper/internal/urlutil"
)

func TestExtractOffersLinksToFrontier(t *testing.T) {
	body := buf.New()
	body.Append([]byte(`<a href="/a">a</a><a href='/b'>b</a><a href="javascript:void(0)">x</a>`))

	ctx := urlutil.HTTPContext{Scheme: "http", Host: "t.test", Page: "/"}
	draining := frontier.New(4, frontier.Draining)
	filling := frontier.New(4, frontier.Filling)

	Extract(body, ctx, draining, filling, t.TempDir(), false)

	if !filling.Contains("http://t.test/a") {
		t.Error("href=\"/a\" should have been inserted")
	}
	if !filling.Contains("http://t.test/b") {
		t.Error("href='/b' should have been inserted")
	}
	if filling.Len() != 2 {
		t.Errorf("filling.Len() = %d, want 2 (javascript: link must be rejected)", filling.Len())
	}
}

func TestRewriteIsIdempotent(t *testing.T) {
	root := t.TempDir()
	ctx := urlutil.HTTPContext{Scheme: "http", Host: "t.test", Page: "/"}

	body := buf.New()
	body.Append([]byte(`<a href="/a">a</a>`))

	Rewrite(body, ctx, root)
	first := string(body.Bytes())

	Rewrite(body, ctx, root)
	second := string(body.Bytes())

	if first != second {
		t.Fatalf("rewrite not idempotent:\n1st: %q\n2nd: %q", first, second)
	}
}

func TestRewriteLeavesAbsoluteURLsAlone(t *testing.T) {
	root := t.TempDir()
	ctx := urlutil.HTTPContext{Scheme: "http", Host: "t.test", Page: "/"}

	body := buf.New()
	body.Append([]byte(`<a href="https://other.test/x">x</a>`))
	Rewrite(body, ctx, root)

	if string(body.Bytes()) != `<a href="https://other.test/x">x</a>` {
		t.Fatalf("absolute URL was rewritten: %q", body.Bytes())
	}
}
