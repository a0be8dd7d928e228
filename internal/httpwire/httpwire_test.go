package httpwire

import (
	"io"
	"strings"
	"testing"

	"github.com/ossreap/reaper/internal/buf"
)

// fakeConn serves Recv calls from a fixed byte slice, in whatever
// chunk sizes the caller asks for, simulating a real socket that may
// deliver a response across many short reads.
type fakeConn struct {
	data []byte
	pos  int
}

func (f *fakeConn) Recv(p []byte) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestBuildRequest(t *testing.T) {
	req := BuildRequest(GET, "/a", "t.test/", "reaper/0.1")
	s := string(req)
	if !strings.HasPrefix(s, "GET /a HTTP/1.1\r\n") {
		t.Fatalf("unexpected request line: %q", s)
	}
	if !strings.Contains(s, "Host: t.test\r\n") {
		t.Fatalf("host not stripped of trailing slash: %q", s)
	}
	if !strings.HasSuffix(s, "\r\n\r\n") {
		t.Fatalf("request not CRLFCRLF terminated: %q", s)
	}
}

func TestReadResponseContentLength(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\nContent-Length: 5\r\n\r\nhello"
	conn := &fakeConn{data: []byte(raw)}
	b := buf.New()

	resp, err := ReadResponse(conn, b)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if string(resp.Body()) != "hello" {
		t.Fatalf("body = %q, want %q", resp.Body(), "hello")
	}
}

func TestReadResponseChunked(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n" +
		"5\r\nhello\r\n" +
		"a\r\n0123456789\r\n" +
		"0\r\n\r\n"
	conn := &fakeConn{data: []byte(raw)}
	b := buf.New()

	resp, err := ReadResponse(conn, b)
	if err != nil {
		t.Fatal(err)
	}
	body := string(resp.Body())
	if body != "hello0123456789" {
		t.Fatalf("body = %q, want %q", body, "hello0123456789")
	}
	if len(body) != 15 {
		t.Fatalf("body length = %d, want 15", len(body))
	}
	if strings.ContainsAny(body, "\r\n") {
		t.Fatalf("body retains framing: %q", body)
	}
}

func TestReadResponseSentinel(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\n\r\n<html><body>hi</body"
	conn := &fakeConn{data: []byte(raw)}
	b := buf.New()

	resp, err := ReadResponse(conn, b)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(resp.Body()), "</body") {
		t.Fatalf("sentinel mode did not retain terminator: %q", resp.Body())
	}
}

func TestFindHeaderNormalizesSetCookie(t *testing.T) {
	header := []byte("HTTP/1.1 200 OK\r\nContent-Type: text/html\r\nSet-Cookie: a=b\r\n")

	name, value, ok := FindHeader(header, "Set-Cookie", 0)
	if !ok || name != "Cookie" || value != "a=b" {
		t.Fatalf("FindHeader(Set-Cookie) = %q, %q, %v, want Cookie, a=b, true", name, value, ok)
	}

	// Querying by the normalised name must find the same Set-Cookie line.
	name, value, ok = FindHeader(header, "Cookie", 0)
	if !ok || name != "Cookie" || value != "a=b" {
		t.Fatalf("FindHeader(Cookie) = %q, %q, %v, want Cookie, a=b, true", name, value, ok)
	}
}

func TestFindHeaderLookup(t *testing.T) {
	header := []byte("HTTP/1.1 200 OK\r\nContent-Type: text/html\r\nSet-Cookie: a=b\r\n")
	name, v, ok := FindHeader(header, "Content-Type", 0)
	if !ok || name != "Content-Type" || v != "text/html" {
		t.Fatalf("FindHeader = %q, %q, %v", name, v, ok)
	}
}
