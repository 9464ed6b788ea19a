package feed

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestShortDescription_StripsMarkup(t *testing.T) {
	got := ShortDescription("<p>Egy <b>kiemelt</b> termék leírása.</p>", 220)

	if strings.Contains(got, "<") {
		t.Errorf("Markup should be stripped, got %q", got)
	}
	if !strings.Contains(got, "kiemelt termék") {
		t.Errorf("Text content lost: %q", got)
	}
}

func TestShortDescription_CollapsesWhitespace(t *testing.T) {
	got := ShortDescription("sok    szóköz\n\n\tés sortörés", 220)

	if got != "sok szóköz és sortörés" {
		t.Errorf("Unexpected result: %q", got)
	}
}

func TestShortDescription_TruncatesAtRuneBoundary(t *testing.T) {
	long := strings.Repeat("árvíztűrő ", 50)

	got := ShortDescription(long, 100)

	if utf8.RuneCountInString(got) > 100 {
		t.Errorf("Expected at most 100 runes, got %d", utf8.RuneCountInString(got))
	}
	if !utf8.ValidString(got) {
		t.Error("Truncation broke a multibyte rune")
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Expected ellipsis suffix, got %q", got)
	}
}

func TestShortDescription_ShortInputUntouched(t *testing.T) {
	if got := ShortDescription("rövid", 220); got != "rövid" {
		t.Errorf("Short input should pass through, got %q", got)
	}
}
