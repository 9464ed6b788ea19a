package catalog

import (
	"testing"

	"github.com/findora-hu/findora/app/feed"
)

func makeItems(n int) []feed.Item {
	items := make([]feed.Item, n)
	for i := range items {
		items[i] = feed.Item{ID: string(rune('a' + i%26)), Title: "item"}
	}
	return items
}

func TestPaginate_SplitSizes(t *testing.T) {
	pages := Paginate(makeItems(2500), 1000)

	if len(pages) != 3 {
		t.Fatalf("Expected 3 pages, got %d", len(pages))
	}

	expected := []int{1000, 1000, 500}
	for i, page := range pages {
		if page.Number != i+1 {
			t.Errorf("Page %d has number %d", i, page.Number)
		}
		if len(page.Items) != expected[i] {
			t.Errorf("Page %d: expected %d items, got %d", i+1, expected[i], len(page.Items))
		}
	}
}

func TestPaginate_ExactMultiple(t *testing.T) {
	pages := Paginate(makeItems(600), 300)

	if len(pages) != 2 {
		t.Errorf("Expected 2 pages, got %d", len(pages))
	}
}

func TestPaginate_EmptyInputYieldsOnePage(t *testing.T) {
	pages := Paginate(nil, 300)

	if len(pages) != 1 {
		t.Fatalf("Expected single empty page, got %d pages", len(pages))
	}
	if pages[0].Number != 1 {
		t.Errorf("Empty page should be number 1, got %d", pages[0].Number)
	}
	if pages[0].Items == nil || len(pages[0].Items) != 0 {
		t.Errorf("Expected empty non-nil item list, got %v", pages[0].Items)
	}
}

func TestPaginate_RoundTrip(t *testing.T) {
	items := makeItems(731)
	pages := Paginate(items, 100)

	total := 0
	for _, page := range pages {
		total += len(page.Items)
	}
	if total != len(items) {
		t.Errorf("Pagination lost items: %d in, %d out", len(items), total)
	}
}

func TestPaginate_InvalidPageSize(t *testing.T) {
	pages := Paginate(makeItems(3), 0)

	if len(pages) != 3 {
		t.Errorf("Page size 0 should degrade to 1, got %d pages", len(pages))
	}
}

func TestSort_CategoryThenPriceThenTitle(t *testing.T) {
	items := []feed.Item{
		{Category: "sport", Price: intPtr(500), Title: "B"},
		{Category: "divat", Price: intPtr(900), Title: "C"},
		{Category: "sport", Price: nil, Title: "A"},
		{Category: "sport", Price: intPtr(500), Title: "a"},
	}

	Sort(items)

	if items[0].Category != "divat" {
		t.Errorf("Expected divat first, got %q", items[0].Category)
	}
	// within sport: priced before unpriced, equal prices stable/title ordered
	if items[1].Price == nil || *items[1].Price != 500 {
		t.Errorf("Expected priced sport item second, got %+v", items[1])
	}
	if items[3].Price != nil {
		t.Errorf("Item without price should sort last in its category, got %+v", items[3])
	}
}
