// Package naming turns messy release filenames into clean library names.
// It provides the string transforms (sanitizing, truncation, title-casing),
// media type classification, and show name resolution used when files are
// renamed into a scraper-friendly layout.
package naming

import (
	"strings"
	"unicode"
)

// replacements are applied in order by Sanitize. Each listed token is
// rewritten to a single period, except the ampersand which becomes the
// literal word "and". The two-character tokens must run last so they can
// collapse the periods introduced by the single-character ones.
var replacements = []string{" ", "[", "]", "(", ")", "'", "&", "-.", ".."}

// Sanitize rewrites characters that cause trouble in shells and scrapers
// to a single period separator. Brackets, parentheses, spaces and quotes
// become periods, "&" becomes "and", and runs of mixed separators collapse
// to one period. A single trailing period is stripped. Sanitize is
// idempotent and never fails.
func Sanitize(name string) string {
	for _, token := range replacements {
		switch token {
		case "&":
			name = strings.ReplaceAll(name, "&", "and")
		case "-.", "..":
			// Repeat until gone: a single pass can leave a new
			// occurrence behind ("a...b" -> "a..b").
			for strings.Contains(name, token) {
				name = strings.ReplaceAll(name, token, ".")
			}
		default:
			name = strings.ReplaceAll(name, token, ".")
		}
	}
	return strings.TrimSuffix(name, ".")
}

// TitleCase capitalizes every letter that follows a non-letter and
// lowercases the rest, leaving non-letters untouched. Digits count as
// non-letters, so "s01e01" becomes "S01E01" and "x264-group" becomes
// "X264-Group".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
