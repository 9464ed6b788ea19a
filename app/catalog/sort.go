package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/findora-hu/findora/app/feed"
)

// Sort orders items by category slug, then ascending price, then title.
// Items without a price sort after priced ones within their category. The
// sort is stable, so equal items keep their feed order.
func Sort(items []feed.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		pa, pb := priceValue(a), priceValue(b)
		if pa != pb {
			return pa < pb
		}
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	})
}

func priceValue(it feed.Item) int {
	if it.Price == nil {
		return math.MaxInt
	}
	return *it.Price
}
