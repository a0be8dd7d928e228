// internal/robots/rules.go
//
// Package robots implements a minimal robots.txt parser and matcher
// for reaper's policy check: one lookup per host, resolved to the
// single most-specific directive that matches the path being fetched.
package robots

// Directive is a single Allow or Disallow line within a Group.
type Directive struct {
	Allow bool
	Path  string
}

// Group binds one or more user-agent tokens to the directives that
// apply to them. Directives are kept sorted longest-path-first
// (see sortBySpecificity) so Allowed can resolve a match by taking
// the first hit instead of tracking a running best candidate.
type Group struct {
	Agents     []string
	Directives []Directive
}

// Robots is a parsed robots.txt file: an ordered set of agent groups.
type Robots struct {
	Groups []Group
}
