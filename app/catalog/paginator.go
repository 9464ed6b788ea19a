package catalog

import "github.com/findora-hu/findora/app/feed"

// Paginate splits items into fixed-size pages numbered from 1. An empty
// item list still yields a single empty page, so every published scope has
// at least one page file. pageSize values below 1 are treated as 1.
func Paginate(items []feed.Item, pageSize int) []Page {
	if pageSize < 1 {
		pageSize = 1
	}

	if len(items) == 0 {
		return []Page{{Number: 1, Items: []feed.Item{}}}
	}

	count := (len(items) + pageSize - 1) / pageSize
	pages := make([]Page, 0, count)
	for i := 0; i < count; i++ {
		start := i * pageSize
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, Page{Number: i + 1, Items: items[start:end]})
	}
	return pages
}
