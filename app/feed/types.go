package feed

// RawItem is one product record as it arrived from a partner feed: a flat
// mapping of lowercased, namespace-stripped keys to strings, numbers or
// string lists. It only lives until the record has been resolved.
type RawItem map[string]any

// Item is the canonical normalized product record produced by the pipeline.
// Field names follow the published JSON page format.
type Item struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"desc,omitempty"`
	URL          string `json:"url"`
	Image        string `json:"img,omitempty"`
	Price        *int   `json:"price"`
	OldPrice     *int   `json:"old_price,omitempty"`
	Discount     *int   `json:"discount,omitempty"`
	CategoryPath string `json:"category_path,omitempty"`
	Category     string `json:"category"`
	Partner      string `json:"partner"`
	Brand        string `json:"brand,omitempty"`
	InStock      bool   `json:"in_stock,omitempty"`
}

// HasDiscountAtLeast reports whether the item carries a discount of at least
// min percent. Items without a discount never qualify.
func (it Item) HasDiscountAtLeast(min int) bool {
	return it.Discount != nil && *it.Discount >= min
}
