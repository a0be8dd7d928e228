// internal/robots/matcher.go
package robots

import (
	"sort"
	"strings"
)

// Allowed reports whether userAgent may fetch path. It picks the
// single best-matching group for userAgent (an exact agent match,
// falling back to "*"), then returns the Allow value of that group's
// longest matching path prefix. No matching group, or no matching
// directive within it, means allowed.
func (r *Robots) Allowed(userAgent, path string) bool {
	if r == nil {
		return true
	}

	group := r.bestGroup(strings.ToLower(userAgent))
	if group == nil {
		return true
	}

	for _, d := range group.Directives {
		if d.Path == "" {
			// An empty path directive never narrows access.
			continue
		}
		if strings.HasPrefix(path, d.Path) {
			return d.Allow
		}
	}
	return true
}

// bestGroup returns the group whose Agents list names ua exactly, or
// failing that the first group naming the wildcard agent "*".
func (r *Robots) bestGroup(ua string) *Group {
	for i := range r.Groups {
		for _, a := range r.Groups[i].Agents {
			if a == ua {
				return &r.Groups[i]
			}
		}
	}
	for i := range r.Groups {
		for _, a := range r.Groups[i].Agents {
			if a == "*" {
				return &r.Groups[i]
			}
		}
	}
	return nil
}

// sortBySpecificity orders a group's directives by path length,
// longest first, so Allowed's scan can stop at the first match
// instead of comparing lengths on every candidate.
func sortBySpecificity(directives []Directive) {
	sort.SliceStable(directives, func(i, j int) bool {
		return len(directives[i].Path) > len(directives[j].Path)
	})
}
