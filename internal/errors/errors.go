// internal/errors/errors.go
//
// Package errors defines reaper's structured error taxonomy. Every error
// the crawl engine produces is classified into a Kind so callers can
// branch on category (KindOf, Is) rather than re-parsing a message
// string. The engine's own per-URL dispatch switches on status codes,
// not on Kind.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind represents the category of a failure. Five kinds
// (network-transient, http-terminal, policy-skip, protocol-parse,
// fatal) name the crawl's error taxonomy; the engine itself constructs
// network-transient, protocol-parse and fatal errors. KindUnknown and
// KindConfig cover unclassified and configuration failures.
type Kind string

const (
	// KindUnknown is an unclassified error; treated as fatal-for-crawl.
	KindUnknown Kind = "unknown"

	// KindConfig indicates a configuration or initialization failure.
	// A failure to open the seed connection is reported as KindFatal.
	KindConfig Kind = "config"

	// KindNetworkTransient covers timeouts, peer-closed connections,
	// and 5xx/400 responses: recovered by reconnecting and skipping
	// the current URL, the crawl continues.
	KindNetworkTransient Kind = "network_transient"

	// KindHTTPTerminal covers a response the engine has already
	// handled without erroring (404/410 are archived, not retried);
	// kept for callers outside the main dispatch path that need to
	// report a terminal-but-not-fatal HTTP outcome as an error value.
	KindHTTPTerminal Kind = "http_terminal"

	// KindPolicySkip covers cross-domain rejection, disallowed
	// tokens, and already-archived pages. The crawl engine's own
	// dispatch treats these as silent skips (a nil error, never
	// logged); this Kind exists for other collaborators, such as a
	// robots.txt policy check, that want to report a skip as an
	// error value instead.
	KindPolicySkip Kind = "policy_skip"

	// KindProtocolParse covers framing failures: no header
	// terminator found, a malformed chunk size, or sentinel mode
	// never finding </body>. The response is dropped and a
	// reconnect is issued.
	KindProtocolParse Kind = "protocol_parse"

	// KindFatal aborts the crawl outright.
	KindFatal Kind = "fatal"
)

// Error is reaper's structured error type.
//
// It wraps a human-readable message and a Kind identifier so that callers
// can distinguish between different failure classes programmatically.
type Error struct {
	Kind Kind   // high-level category of the error
	Msg  string // descriptive message
	Err  error  // underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap returns the underlying error, enabling errors.Is/As usage.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error with the provided kind and message.
//
// The underlying error may be nil if there is no nested error.
func New(kind Kind, msg string, underlying error) *Error {
	return &Error{
		Kind: kind,
		Msg:  msg,
		Err:  underlying,
	}
}

// KindOf extracts the Kind of err if it (or something it wraps) is an
// *Error, otherwise it returns KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err (or something it wraps) is an *Error of kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
