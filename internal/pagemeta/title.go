// internal/pagemeta/title.go
//
// Package pagemeta pulls small pieces of metadata out of an archived
// page's body for the dashboard to display, without doing a full HTML
// parse. Extracting the <title> is the one case worth a real
// tokenizer rather than another table-driven byte scan: titles can
// contain escaped entities and nested tags that a naive scan would
// mis-handle.
package pagemeta

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractTitle returns the text content of the first <title> element
// in body, or "" if none is found or the document fails to tokenize.
func ExtractTitle(body []byte) string {
	tokenizer := html.NewTokenizer(strings.NewReader(string(body)))

	inTitle := false
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == "title" {
				inTitle = true
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == "title" {
				return ""
			}
		case html.TextToken:
			if inTitle {
				text := strings.TrimSpace(string(tokenizer.Text()))
				if text != "" {
					return text
				}
			}
		}
	}
}
