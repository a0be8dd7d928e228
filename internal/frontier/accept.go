// internal/frontier/accept.go
//
// Candidate acceptability: whether a URL found by the link extractor
// is worth queuing into the filling generation at all.
package frontier

import (
	"strings"

	"github.com/ossreap/reaper/internal/urlutil"
)

// disallowedSubstrings rejects candidates that are never worth
// crawling: script/data URIs and a handful of binary extensions that
// would otherwise pass the "parseable" check on their own.
var disallowedSubstrings = []string{
	"javascript:",
	"data:image",
	".exe",
	".dll",
	"cgi-",
}

// AcceptParams bundles the context Accept needs beyond the two
// Frontiers themselves.
type AcceptParams struct {
	CandidateURL string
	Ctx          urlutil.HTTPContext
	ArchiveRoot  string
	AllowXDomain bool
}

// Accept reports whether candidate is acceptable to queue into the
// filling generation: short enough, not already archived, free of
// fragments and disallowed tokens, same-host (or cross-host when
// explicitly allowed), and absent from the draining generation's tree.
//
// draining may be nil (e.g. the very first generation has no prior
// draining side to check); Frontier.Contains already guards a nil
// receiver, so the duplicate check here never panics on that case.
func Accept(draining *Frontier, p AcceptParams) bool {
	url := p.CandidateURL

	if len(url) >= 256 {
		return false
	}
	if strings.Contains(url, "#") {
		return false
	}
	for _, bad := range disallowedSubstrings {
		if strings.Contains(url, bad) {
			return false
		}
	}
	if urlutil.IsXDomain(p.Ctx, url) && !p.AllowXDomain {
		return false
	}
	if urlutil.LocalArchiveExists(p.ArchiveRoot, url) {
		return false
	}
	if draining.Contains(url) {
		return false
	}
	return true
}
