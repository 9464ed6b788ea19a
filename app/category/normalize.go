package category

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldSpaces = regexp.MustCompile(`\s+`)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText lowercases, removes diacritics and collapses whitespace.
// All matching decisions in the classifier run on this form, since the feeds
// mix accented and unaccented Hungarian spellings freely.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	if folded, _, err := transform.String(stripAccents, s); err == nil {
		s = folded
	}
	return strings.TrimSpace(foldSpaces.ReplaceAllString(s, " "))
}
