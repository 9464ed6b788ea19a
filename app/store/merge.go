package store

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/findora-hu/findora/app/category"
	"github.com/findora-hu/findora/app/feed"
)

// near-duplicate titles from different partners collapse within this edit
// distance
const maxTitleDistance = 2

// MergePartnerResults collapses cross-partner duplicates of the same
// product: exact normalized-title matches and near-matches within a small
// edit distance, compared per category. The first occurrence wins and input
// order is preserved.
func MergePartnerResults(items []feed.Item) []feed.Item {
	seen := make(map[string]bool, len(items))
	kept := make(map[string][]string)
	out := make([]feed.Item, 0, len(items))

	for _, item := range items {
		title := category.NormalizeText(item.Title)
		if title == "" {
			out = append(out, item)
			continue
		}

		exactKey := item.Category + "|" + title
		if seen[exactKey] {
			continue
		}

		if hasNearMatch(kept[item.Category], title) {
			continue
		}

		seen[exactKey] = true
		kept[item.Category] = append(kept[item.Category], title)
		out = append(out, item)
	}

	return out
}

func hasNearMatch(titles []string, title string) bool {
	for _, other := range titles {
		if lengthGap(other, title) > maxTitleDistance {
			continue
		}
		if fuzzy.LevenshteinDistance(other, title) <= maxTitleDistance {
			return true
		}
	}
	return false
}

func lengthGap(a, b string) int {
	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	return diff
}
