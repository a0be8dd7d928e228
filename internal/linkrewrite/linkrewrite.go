// internal/linkrewrite/linkrewrite.go
//
// Package linkrewrite implements the two passes that share one fixed
// attribute table: Extract offers every URL-shaped attribute value to
// the frontier, and Rewrite splices each value's own local mirror path
// in place of it afterward. Both sweep the response body with
// the same table so that adding a new attribute form (e.g. srcset)
// only ever needs one new table entry.
package linkrewrite

import (
	"bytes"
	"strings"

	"github.com/ossreap/reaper/internal/buf"
	"github.com/ossreap/reaper/internal/frontier"
	"github.com/ossreap/reaper/internal/urlutil"
)

type urlType struct {
	prefix string
	delim  byte
}

// urlTypes is the fixed table both passes iterate to completion.
var urlTypes = []urlType{
	{`href="`, '"'},
	{`href='`, '\''},
	{`src="`, '"'},
	{`src='`, '\''},
}

// Extract sweeps body for each table entry, resolving every candidate
// to an absolute URL and offering it to the frontier. draining is
// consulted for cross-generation duplicate rejection; accepted
// candidates are inserted into filling.
func Extract(body *buf.Buf, ctx urlutil.HTTPContext, draining, filling *frontier.Frontier, archiveRoot string, allowXDomain bool) {
	for _, t := range urlTypes {
		pos := 0
		for {
			data := body.Bytes()
			idx := bytes.Index(data[pos:], []byte(t.prefix))
			if idx < 0 {
				break
			}
			urlStart := pos + idx + len(t.prefix)
			delimIdx := bytes.IndexByte(data[urlStart:], t.delim)
			if delimIdx < 0 {
				break
			}
			delimIdx += urlStart

			url := string(data[urlStart:delimIdx])
			pos = delimIdx + 1

			if len(url) == 0 || len(url) >= urlutil.HTTPURLMax {
				continue
			}
			absolute := urlutil.MakeFullURL(ctx, url)
			if frontier.Accept(draining, frontier.AcceptParams{
				CandidateURL: absolute,
				Ctx:          ctx,
				ArchiveRoot:  archiveRoot,
				AllowXDomain: allowXDomain,
			}) {
				filling.Insert(absolute)
			}
		}
	}
}

// Rewrite sweeps body for each table entry a second time, splicing the
// local mirror path in place of every URL it can resolve. Values that
// are already absolute http(s) URLs, too long, or already rewritten
// (they already carry archiveRoot as a prefix) are left untouched —
// the archiveRoot check is what makes a second Rewrite pass a no-op,
// satisfying the idempotent-rewrite property.
func Rewrite(body *buf.Buf, ctx urlutil.HTTPContext, archiveRoot string) {
	for _, t := range urlTypes {
		pos := 0
		for {
			data := body.Bytes()
			idx := bytes.Index(data[pos:], []byte(t.prefix))
			if idx < 0 {
				break
			}
			urlStart := pos + idx + len(t.prefix)
			delimIdx := bytes.IndexByte(data[urlStart:], t.delim)
			if delimIdx < 0 {
				break
			}
			delimIdx += urlStart

			url := string(data[urlStart:delimIdx])

			if shouldSkipRewrite(url, archiveRoot) {
				pos = delimIdx + 1
				continue
			}

			absolute := urlutil.MakeFullURL(ctx, url)
			local := urlutil.MakeLocalURL(archiveRoot, absolute)

			// Save the span as offsets, splice, then resume the sweep
			// from just past the newly-inserted text: Collapse and
			// Shift may both reallocate body's backing array, so
			// nothing computed before this point may be held as a
			// slice reference across them.
			body.Collapse(urlStart, delimIdx-urlStart)
			body.Shift(urlStart, []byte(local))
			pos = urlStart + len(local) + 1
		}
	}
}

func shouldSkipRewrite(url, archiveRoot string) bool {
	if len(url) == 0 || len(url) >= urlutil.HTTPURLMax {
		return true
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return true
	}
	if archiveRoot != "" && strings.HasPrefix(url, archiveRoot) {
		return true
	}
	return false
}
