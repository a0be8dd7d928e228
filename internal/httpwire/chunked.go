// internal/httpwire/chunked.go
//
// Chunked transfer-encoding decoding, done in place on the response
// buffer. Each iteration strips one hex size line and its trailing
// CRLF out of the buffer via Collapse, so that on return the buffer
// holds exactly header + decoded body with no chunk metadata left.
package httpwire

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/ossreap/reaper/internal/buf"
)

// sizeLineLookahead bounds how far past the cursor a chunk size line
// is searched for before giving up and reading more.
const sizeLineLookahead = 20

func decodeChunked(conn Recver, b *buf.Buf, headerEnd int) error {
	pos := headerEnd

	for {
		pos = skipStrayCRLF(b, pos)

		crIdx, err := ensureSizeLine(conn, b, pos)
		if err != nil {
			return err
		}

		sizeLine := string(b.Bytes()[pos : pos+crIdx])
		size, err := strconv.ParseInt(strings.TrimSpace(sizeLine), 16, 64)
		if err != nil {
			return fmt.Errorf("httpwire: malformed chunk size %q: %w", sizeLine, err)
		}

		lineLen := crIdx + 2 // size line plus its CRLF

		if size == 0 {
			// Final chunk: drop the zero-size line and any trailer
			// bytes that follow it; nothing more to read.
			b.Collapse(pos, b.Len()-pos)
			return nil
		}

		// Collapse the size line out so the chunk's body bytes become
		// contiguous with whatever body has already been decoded.
		b.Collapse(pos, lineLen)

		if err := ensureBuffered(conn, b, pos, int(size)); err != nil {
			return err
		}
		pos += int(size)

		if err := ensureBuffered(conn, b, pos, 2); err != nil {
			return err
		}
		b.Collapse(pos, 2) // trailing CRLF after the chunk body
	}
}

func skipStrayCRLF(b *buf.Buf, pos int) int {
	data := b.Bytes()
	for pos < len(data) && (data[pos] == '\r' || data[pos] == '\n') {
		pos++
	}
	return pos
}

// ensureSizeLine guarantees a CR appears within sizeLineLookahead
// bytes of pos, reading more from conn if it does not yet, and returns
// the CR's offset relative to pos.
func ensureSizeLine(conn Recver, b *buf.Buf, pos int) (int, error) {
	for {
		data := b.Bytes()
		end := pos + sizeLineLookahead
		if end > len(data) {
			end = len(data)
		}
		if crIdx := bytes.IndexByte(data[pos:end], '\r'); crIdx >= 0 {
			return crIdx, nil
		}
		if len(data)-pos >= sizeLineLookahead {
			return 0, fmt.Errorf("httpwire: chunk size line not found within %d bytes", sizeLineLookahead)
		}
		n, err := readBlockFrom(conn, b)
		if n == 0 && err != nil {
			return 0, fmt.Errorf("httpwire: chunked: reading size line: %w", err)
		}
	}
}

// ensureBuffered reads from conn until at least need bytes are
// available starting at pos. The chunk's starting offset is saved by
// the caller as an int, not a slice reference, since the reads issued
// here may reallocate b's backing array.
func ensureBuffered(conn Recver, b *buf.Buf, pos, need int) error {
	for b.Len()-pos < need {
		n, err := readBlockFrom(conn, b)
		if n == 0 && err != nil {
			return fmt.Errorf("httpwire: chunked: body truncated: %w", err)
		}
	}
	return nil
}
