// internal/httpwire/response.go
package httpwire

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/ossreap/reaper/internal/buf"
)

// Recver is the read half of a connection; netconn.Connection and any
// test double satisfy it.
type Recver interface {
	Recv(p []byte) (int, error)
}

const (
	readBlock  = 256
	maxHeaders = 64 * 1024
)

// headerTerminator marks the end of the header block.
var headerTerminator = []byte("\r\n\r\n")

// bodySentinel is scanned for when a response advertises neither
// Transfer-Encoding nor Content-Length.
var bodySentinel = []byte("</body")

// Response is a fully-read HTTP response: header and decoded body
// live contiguously in Raw, with chunk framing, if any, stripped out.
type Response struct {
	StatusCode int
	HeaderEnd  int // offset into Raw where the body begins
	Raw        *buf.Buf
}

// Body returns the decoded response body.
func (r *Response) Body() []byte {
	return r.Raw.Bytes()[r.HeaderEnd:]
}

// Header returns the raw header block, including the request line.
func (r *Response) Header() []byte {
	return r.Raw.Bytes()[:r.HeaderEnd]
}

// ReadResponse reads one HTTP/1.1 response from conn: the header block
// first, then the body using whichever of the three framing modes the
// headers select. After it returns successfully, Raw contains exactly
// header + decoded body with all chunk metadata removed.
func ReadResponse(conn Recver, b *buf.Buf) (*Response, error) {
	b.Clear()

	headerEnd, err := readUntilHeaderEnd(conn, b)
	if err != nil {
		return nil, err
	}

	status, err := parseStatusLine(b.Bytes()[:headerEnd])
	if err != nil {
		return nil, err
	}

	header := b.Bytes()[:headerEnd]
	switch {
	case hasChunkedEncoding(header):
		if err := decodeChunked(conn, b, headerEnd); err != nil {
			return nil, err
		}
	case contentLength(header) >= 0:
		if err := readContentLength(conn, b, headerEnd, contentLength(header)); err != nil {
			return nil, err
		}
	default:
		if err := readUntilSentinel(conn, b); err != nil {
			return nil, err
		}
	}

	return &Response{StatusCode: status, HeaderEnd: headerEnd, Raw: b}, nil
}

// readUntilHeaderEnd reads in 256-byte blocks until the literal
// \r\n\r\n terminator is found, returning the offset just past it.
func readUntilHeaderEnd(conn Recver, b *buf.Buf) (int, error) {
	for {
		if idx := b.Index(0, headerTerminator); idx >= 0 {
			return idx + len(headerTerminator), nil
		}
		if b.Len() > maxHeaders {
			return 0, fmt.Errorf("httpwire: header block exceeds %d bytes without terminator", maxHeaders)
		}
		n, err := readBlockFrom(conn, b)
		if n == 0 && err != nil {
			return 0, fmt.Errorf("httpwire: no header terminator found: %w", err)
		}
	}
}

func readBlockFrom(conn Recver, b *buf.Buf) (int, error) {
	tmp := make([]byte, readBlock)
	n, err := conn.Recv(tmp)
	if n > 0 {
		b.Append(tmp[:n])
	}
	return n, err
}

// parseStatusLine finds the two spaces in "HTTP/1.1 200 OK" and parses
// the substring between them as the numeric status code.
func parseStatusLine(header []byte) (int, error) {
	lineEnd := bytes.IndexByte(header, '\n')
	if lineEnd < 0 {
		lineEnd = len(header)
	}
	line := header[:lineEnd]

	first := bytes.IndexByte(line, ' ')
	if first < 0 {
		return 0, fmt.Errorf("httpwire: malformed status line %q", line)
	}
	rest := line[first+1:]
	second := bytes.IndexByte(rest, ' ')
	if second < 0 {
		second = len(rest)
	}
	code, err := strconv.Atoi(strings.TrimSpace(string(rest[:second])))
	if err != nil {
		return 0, fmt.Errorf("httpwire: malformed status code in %q: %w", line, err)
	}
	return code, nil
}

func hasChunkedEncoding(header []byte) bool {
	v, ok := findHeaderRaw(header, "Transfer-Encoding")
	return ok && strings.Contains(strings.ToLower(v), "chunked")
}

// contentLength returns the parsed Content-Length, or -1 if absent.
func contentLength(header []byte) int {
	v, ok := findHeaderRaw(header, "Content-Length")
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return -1
	}
	return n
}

// readContentLength ensures exactly n bytes of body follow headerEnd,
// reading more only if fewer than n were already buffered from the
// initial header read (the "overread" case).
func readContentLength(conn Recver, b *buf.Buf, headerEnd, n int) error {
	overread := b.Len() - headerEnd
	if overread >= n {
		b.Snip(overread - n)
		return nil
	}
	need := n - overread
	for need > 0 {
		read, err := readBlockFrom(conn, b)
		if read > 0 {
			take := read
			if take > need {
				take = need
			}
			need -= take
		}
		if read == 0 && err != nil {
			return fmt.Errorf("httpwire: content-length body truncated: %w", err)
		}
	}
	b.Snip(b.Len() - headerEnd - n)
	return nil
}

// readUntilSentinel repeatedly reads until the literal </body appears
// anywhere in the buffer; used only when a server frames neither way.
func readUntilSentinel(conn Recver, b *buf.Buf) error {
	for {
		if idx := b.Index(0, bodySentinel); idx >= 0 {
			return nil
		}
		if b.Len() > maxHeaders*16 {
			return fmt.Errorf("httpwire: sentinel </body> never found")
		}
		n, err := readBlockFrom(conn, b)
		if n == 0 && err != nil {
			return fmt.Errorf("httpwire: sentinel </body> never found: %w", err)
		}
	}
}

// FindHeader performs a linear search for name starting at
// start_offset within header, returning the header's (possibly
// normalised) name alongside its value. A query for either "Cookie"
// or "Set-Cookie" matches a "Set-Cookie:" line, and the name returned
// is always "Cookie" — the normalisation runs on both sides of the
// lookup, not just the output, so carrying a response's cookie
// forward onto the next request never needs a separate rename step.
func FindHeader(header []byte, name string, startOffset int) (outName, value string, found bool) {
	if startOffset < 0 || startOffset > len(header) {
		return "", "", false
	}
	v, ok := findHeaderRaw(header[startOffset:], name)
	if !ok {
		return "", "", false
	}
	return NormalizeCookieHeader(name), v, true
}

func findHeaderRaw(header []byte, name string) (string, bool) {
	target := strings.ToLower(NormalizeCookieHeader(name))
	for _, line := range strings.Split(string(header), "\r\n") {
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			continue
		}
		field := strings.ToLower(strings.TrimSpace(NormalizeCookieHeader(line[:idx])))
		if field == target {
			return strings.TrimSpace(line[idx+1:]), true
		}
	}
	return "", false
}

// NormalizeCookieHeader renames a Set-Cookie line to Cookie, used when
// carrying a response's cookie forward onto the next request.
func NormalizeCookieHeader(name string) string {
	if strings.EqualFold(name, "Set-Cookie") {
		return "Cookie"
	}
	return name
}
