package buf

import (
	"bytes"
	"testing"
)

func TestCollapseThenShift(t *testing.T) {
	b := New()
	b.Append([]byte("hello WORLD goodbye"))

	// Splice "WORLD" (offset 6, len 5) with "there".
	b.Collapse(6, 5)
	b.Shift(6, []byte("there"))

	if got := string(b.Bytes()); got != "hello there goodbye" {
		t.Fatalf("got %q", got)
	}
}

func TestAppendEx(t *testing.T) {
	b := New()
	b.AppendEx([]byte("abcdef"), 3)
	if got := string(b.Bytes()); got != "abc" {
		t.Fatalf("got %q", got)
	}
}

func TestSnip(t *testing.T) {
	b := New()
	b.Append([]byte("abcdef"))
	b.Snip(2)
	if got := string(b.Bytes()); got != "abcd" {
		t.Fatalf("got %q", got)
	}
}

func TestReadFrom(t *testing.T) {
	b := New()
	r := bytes.NewReader([]byte("0123456789"))
	n, err := b.ReadFrom(r, 4)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 || string(b.Bytes()) != "0123" {
		t.Fatalf("n=%d data=%q", n, b.Bytes())
	}
}

func TestIndex(t *testing.T) {
	b := New()
	b.Append([]byte("header\r\n\r\nbody"))
	if idx := b.Index(0, []byte("\r\n\r\n")); idx != 6 {
		t.Fatalf("Index = %d, want 6", idx)
	}
	if idx := b.Index(0, []byte("nope")); idx != -1 {
		t.Fatalf("Index = %d, want -1", idx)
	}
}
