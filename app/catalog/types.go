package catalog

import (
	"time"

	"github.com/findora-hu/findora/app/feed"
)

// Meta describes one published scope (a partner's full catalog, one of its
// category sub-feeds or its deals feed). It is written next to the page
// files as meta.json.
type Meta struct {
	TotalItems  int    `json:"total_items"`
	PageSize    int    `json:"page_size"`
	PageCount   int    `json:"page_count"`
	Partner     string `json:"partner"`
	Scope       string `json:"scope"`
	GeneratedAt string `json:"generated_at"`
}

// Page is one fixed-size slice of a scope's item list.
type Page struct {
	Number int
	Items  []feed.Item
}

func newMeta(partner, scope string, totalItems, pageSize, pageCount int) Meta {
	return Meta{
		TotalItems:  totalItems,
		PageSize:    pageSize,
		PageCount:   pageCount,
		Partner:     partner,
		Scope:       scope,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
