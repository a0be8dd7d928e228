// internal/httpwire/request.go
//
// Package httpwire speaks the subset of HTTP/1.1 the crawler needs by
// hand: a fixed request line and header block, and a response reader
// that must pick between three different body-framing strategies
// before it knows where the response ends. net/http's client cannot be
// reused here because it hides exactly the framing decision this
// package exists to make explicit and testable.
package httpwire

import "fmt"

// Verb is one of the two methods the crawler issues.
type Verb string

const (
	HEAD Verb = "HEAD"
	GET  Verb = "GET"
)

// BuildRequest renders the fixed request line and header block:
//
//	VERB SP target SP HTTP/1.1 CRLF
//	User-Agent: ...CRLF
//	Accept: ...CRLF
//	Host: ...CRLF
//	Connection: keep-alive CRLF
//	CRLF
//
// host has any trailing '/' stripped before being written.
func BuildRequest(verb Verb, target, host, userAgent string) []byte {
	for len(host) > 0 && host[len(host)-1] == '/' {
		host = host[:len(host)-1]
	}
	return []byte(fmt.Sprintf(
		"%s %s HTTP/1.1\r\n"+
			"User-Agent: %s\r\n"+
			"Accept: */*\r\n"+
			"Host: %s\r\n"+
			"Connection: keep-alive\r\n"+
			"\r\n",
		verb, target, userAgent, host,
	))
}
