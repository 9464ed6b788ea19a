package feed

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ShortDescription strips HTML markup from a feed description and truncates
// the plain text to maxLen runes with a trailing ellipsis.
func ShortDescription(s string, maxLen int) string {
	if s == "" {
		return ""
	}

	text := s
	if strings.ContainsAny(s, "<>") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			text = doc.Text()
		}
	}

	text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return strings.TrimSpace(string(runes[:maxLen-1])) + "…"
}
