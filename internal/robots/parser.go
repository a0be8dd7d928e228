// internal/robots/parser.go
package robots

import (
	"bufio"
	"bytes"
	"strings"
)

// Parse constructs a Robots structure from the given robots.txt bytes.
// The parser is intentionally simple but sufficient for reaper's goal
// of legal, respectful access: User-agent, Allow, and Disallow are the
// only directives it understands; everything else (Crawl-delay,
// Sitemap, ...) is read past and discarded.
func Parse(data []byte) *Robots {
	r := &Robots{}
	scanner := bufio.NewScanner(bytes.NewReader(data))

	var current *Group

	for scanner.Scan() {
		line := scanner.Text()
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		field, value, ok := splitDirective(line)
		if !ok {
			continue
		}

		switch field {
		case "user-agent":
			if current == nil || len(current.Directives) > 0 {
				r.Groups = append(r.Groups, Group{})
				current = &r.Groups[len(r.Groups)-1]
			}
			current.Agents = append(current.Agents, strings.ToLower(value))

		case "disallow":
			appendDirective(current, Directive{Allow: false, Path: value})

		case "allow":
			appendDirective(current, Directive{Allow: true, Path: value})
		}
	}

	for i := range r.Groups {
		sortBySpecificity(r.Groups[i].Directives)
	}

	return r
}

func splitDirective(line string) (field, value string, ok bool) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.ToLower(strings.TrimSpace(parts[0])), strings.TrimSpace(parts[1]), true
}

func appendDirective(current *Group, d Directive) {
	if current == nil {
		return
	}
	current.Directives = append(current.Directives, d)
}
