package catalog

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/findora-hu/findora/app/feed"
)

// sizeTokens matches the size markers that differentiate variant listings:
// letter sizes XXS-5XL, numeric EU sizes, size ranges like "38-40",
// parenthesized size markers and explicit "méret:" labels.
var sizeTokens = regexp.MustCompile(`(?i)\b(?:\d{2}-\d{2}|XXS|XS|S|M|L|XL|XXL|3XL|4XL|5XL|\d{2})\b`)

var sizeLabels = regexp.MustCompile(`(?i)\(\s*m[ée]ret[^)]*\)|m[ée]ret\s*:\s*\S+`)

var spaceRuns = regexp.MustCompile(`\s{2,}`)

// colorWords keep distinct colors of the same product apart; only size
// variants collapse.
var colorPattern = regexp.MustCompile(`(?i)\b(fekete|feh[ée]r|sz[üu]rke|k[ée]k|piros|z[öo]ld|lila|s[áa]rga|narancs|barna|b[ée]zs|r[óo]zsasz[íi]n|bord[óo]|bordeaux)\b`)

// variantParams are URL query parameters that only select a size/variant of
// the same physical product.
var variantParams = map[string]bool{
	"size":         true,
	"meret":        true,
	"merete":       true,
	"méret":        true,
	"variant":      true,
	"variant_size": true,
	"size_id":      true,
	"meret_id":     true,
	"option":       true,
}

// Deduper collapses size/color variant listings of the same product into a
// single entry, merging the best available sub-fields.
type Deduper struct{}

func NewDeduper() *Deduper {
	return &Deduper{}
}

// Run deduplicates a partner's item list. Output order is the insertion
// order of first-seen group keys. The result never has more entries than
// the input.
func (d *Deduper) Run(items []feed.Item) []feed.Item {
	type bucket struct {
		index int
	}

	buckets := make(map[string]bucket, len(items))
	out := make([]feed.Item, 0, len(items))

	for _, it := range items {
		key := groupKey(it)
		b, ok := buckets[key]
		if !ok {
			buckets[key] = bucket{index: len(out)}
			out = append(out, it)
			continue
		}
		out[b.index] = mergeBest(out[b.index], it)
	}

	return out
}

func groupKey(it feed.Item) string {
	title := normalizeTitleForSize(it.Title)
	color := detectColor(it.Title)
	if color == "" {
		color = detectColor(it.Description)
	}
	return strings.Join([]string{
		it.Partner,
		title,
		color,
		stripVariantParams(it.URL),
		imagePath(it.Image),
	}, "|")
}

// normalizeTitleForSize removes recognized size tokens from a title and
// lowercases the collapsed remainder, so "Piros póló S" and "Piros póló M"
// group together.
func normalizeTitleForSize(title string) string {
	if title == "" {
		return ""
	}
	t := spaceRuns.ReplaceAllString(strings.TrimSpace(title), " ")
	t = sizeLabels.ReplaceAllString(t, "")
	t = sizeTokens.ReplaceAllString(t, "")
	t = spaceRuns.ReplaceAllString(t, " ")
	return strings.ToLower(strings.TrimSpace(t))
}

func detectColor(s string) string {
	if s == "" {
		return ""
	}
	match := colorPattern.FindString(strings.ToLower(s))
	return strings.ToLower(match)
}

// stripVariantParams removes size/variant query parameters from a product
// URL and drops the fragment. Unparseable URLs degrade to raw string
// splitting instead of failing.
func stripVariantParams(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return rawPath(rawURL)
	}

	q := u.Query()
	for key := range q {
		if variantParams[strings.ToLower(key)] {
			q.Del(key)
		}
	}
	u.RawQuery = q.Encode()
	u.Fragment = ""
	return u.String()
}

// imagePath reduces an image URL to its path part (no query, no fragment).
func imagePath(rawURL string) string {
	return rawPath(rawURL)
}

func rawPath(rawURL string) string {
	s, _, _ := strings.Cut(rawURL, "#")
	s, _, _ = strings.Cut(s, "?")
	return s
}

// mergeBest keeps the most desirable value of every sub-field: a present
// image, the lower current price, the higher discount, the longer
// description and the higher pre-discount price.
func mergeBest(kept, next feed.Item) feed.Item {
	if kept.Image == "" && next.Image != "" {
		kept.Image = next.Image
	}
	if next.Price != nil && (kept.Price == nil || *next.Price < *kept.Price) {
		kept.Price = next.Price
	}
	if next.Discount != nil && (kept.Discount == nil || *next.Discount > *kept.Discount) {
		kept.Discount = next.Discount
	}
	if len(next.Description) > len(kept.Description) {
		kept.Description = next.Description
	}
	if next.OldPrice != nil && (kept.OldPrice == nil || *next.OldPrice > *kept.OldPrice) {
		kept.OldPrice = next.OldPrice
	}
	if kept.Brand == "" && next.Brand != "" {
		kept.Brand = next.Brand
	}
	if !kept.InStock && next.InStock {
		kept.InStock = true
	}
	return kept
}
