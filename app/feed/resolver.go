package feed

import (
	"fmt"
	"regexp"
	"strings"
)

// Ordered fallback key tables per logical field. Keys are the lowercased,
// namespace-stripped spellings observed across the partner feeds; the first
// present, non-empty candidate wins.
var (
	idKeys       = []string{"id", "item_id", "sku", "product_id", "itemid", "code", "identifier", "guid"}
	titleKeys    = []string{"productname", "title", "name", "product_name"}
	linkKeys     = []string{"url", "link", "product_url", "product_link", "deeplink"}
	imageKeys    = []string{"imgurl", "image_link", "image", "image_url", "image1", "main_image_url", "thumbnail"}
	imageAltKeys = []string{"imgurl_alternative", "additional_image_link", "additional_image_url", "images", "image2", "image3"}
	descKeys     = []string{"description", "long_description", "short_description", "desc", "popis"}
	brandKeys    = []string{"brand", "manufacturer"}
	categoryKeys = []string{"category", "param_category", "categorytext", "google_product_category_name", "google_product_category", "product_type"}
	backendKeys  = []string{"findora_main", "cat", "catid", "category_id"}
	stockKeys    = []string{"availability", "in_stock", "stock", "delivery_status"}
)

var inStockPattern = regexp.MustCompile(`(?i)in|stock|rakt|skladem|igen|yes|1`)

// First returns the first present, non-empty value among the candidate keys.
// List values yield their first element. Lookup is case-insensitive because
// raw keys are lowercased at decode time.
func (r RawItem) First(keys ...string) string {
	for _, key := range keys {
		switch v := r[strings.ToLower(key)].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case []string:
			if len(v) > 0 {
				return v[0]
			}
		case float64:
			return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", v), "0"), ".")
		case int:
			return fmt.Sprintf("%d", v)
		}
	}
	return ""
}

// FirstRaw is First without string coercion, for fields where the original
// type matters (JSON feeds deliver prices as numbers).
func (r RawItem) FirstRaw(keys ...string) any {
	for _, key := range keys {
		v, ok := r[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case string:
			if strings.TrimSpace(val) != "" {
				return val
			}
		case []string:
			if len(val) > 0 {
				return val[0]
			}
		default:
			if v != nil {
				return v
			}
		}
	}
	return nil
}

// BackendCategory returns the category label a prior pipeline stage (or the
// upstream classifier) already attached to the record, if any.
func (r RawItem) BackendCategory() string {
	return strings.ToLower(r.First(backendKeys...))
}

// Resolver turns raw feed records into normalized items.
type Resolver struct {
	maxDescLen int
}

func NewResolver() *Resolver {
	return &Resolver{maxDescLen: 220}
}

// Run resolves one raw record. The second return value is false when the
// record is unusable (no title and no url) and must be dropped.
func (rv *Resolver) Run(partnerID string, raw RawItem) (Item, bool) {
	title := raw.First(titleKeys...)
	link := raw.First(linkKeys...)
	if title == "" && link == "" {
		return Item{}, false
	}

	image := raw.First(imageKeys...)
	if image == "" {
		image = raw.First(imageAltKeys...)
	}

	item := Item{
		Title:        title,
		URL:          link,
		Image:        image,
		Description:  ShortDescription(raw.First(descKeys...), rv.maxDescLen),
		CategoryPath: raw.First(categoryKeys...),
		Brand:        raw.First(brandKeys...),
		Partner:      partnerID,
		InStock:      resolveStock(raw),
	}

	item.ID = raw.First(idKeys...)
	if item.ID == "" {
		if link != "" {
			item.ID = link
		} else {
			item.ID = title
		}
	}

	prices := ResolvePrices(raw)
	item.Price = prices.Current
	item.OldPrice = prices.Original
	item.Discount = prices.Discount

	return item, true
}

func resolveStock(raw RawItem) bool {
	value := raw.First(stockKeys...)
	if value == "" {
		// most feeds only list purchasable items and omit the field
		return true
	}
	return inStockPattern.MatchString(value)
}
