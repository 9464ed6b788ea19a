package catalog

import (
	"testing"

	"github.com/findora-hu/findora/app/feed"
)

func intPtr(n int) *int { return &n }

func TestDeduper_Run_SizeVariantsCollapse(t *testing.T) {
	deduper := NewDeduper()

	items := []feed.Item{
		{Partner: "testshop", Title: "Piros póló S", URL: "https://shop.example/p/1?size=s"},
		{Partner: "testshop", Title: "Piros póló M", URL: "https://shop.example/p/1?size=m"},
		{Partner: "testshop", Title: "Piros póló L", URL: "https://shop.example/p/1?size=l"},
	}

	result := deduper.Run(items)

	if len(result) != 1 {
		t.Fatalf("Expected 3 size variants to collapse into 1, got %d", len(result))
	}
}

func TestDeduper_Run_DistinctColorsKept(t *testing.T) {
	deduper := NewDeduper()

	items := []feed.Item{
		{Partner: "testshop", Title: "Piros póló S", URL: "https://shop.example/p/1"},
		{Partner: "testshop", Title: "Kék póló S", URL: "https://shop.example/p/2"},
	}

	result := deduper.Run(items)

	if len(result) != 2 {
		t.Errorf("Different colors must not merge, got %d items", len(result))
	}
}

func TestDeduper_Run_MergesBestFields(t *testing.T) {
	deduper := NewDeduper()

	items := []feed.Item{
		{
			Partner: "testshop", Title: "Fehér ing M", URL: "https://shop.example/p/3?size=m",
			Image: "https://shop.example/i/3.jpg?v=m",
			Price: intPtr(9000), Description: "rövid",
		},
		{
			Partner: "testshop", Title: "Fehér ing L", URL: "https://shop.example/p/3?size=l",
			Image: "https://shop.example/i/3.jpg?v=l",
			Price: intPtr(8500), OldPrice: intPtr(12000), Discount: intPtr(29),
			Description: "sokkal hosszabb leírás",
		},
	}

	result := deduper.Run(items)

	if len(result) != 1 {
		t.Fatalf("Expected 1 merged item, got %d", len(result))
	}

	merged := result[0]
	if merged.Price == nil || *merged.Price != 8500 {
		t.Errorf("Expected lower price kept, got %v", merged.Price)
	}
	if merged.OldPrice == nil || *merged.OldPrice != 12000 {
		t.Errorf("Expected higher old price kept, got %v", merged.OldPrice)
	}
	if merged.Discount == nil || *merged.Discount != 29 {
		t.Errorf("Expected higher discount kept, got %v", merged.Discount)
	}
	if merged.Description != "sokkal hosszabb leírás" {
		t.Errorf("Expected longer description kept, got %q", merged.Description)
	}
}

func TestDeduper_Run_NeverIncreasesCount(t *testing.T) {
	deduper := NewDeduper()

	items := []feed.Item{
		{Partner: "a", Title: "Egy", URL: "https://a.example/1"},
		{Partner: "a", Title: "Kettő", URL: "https://a.example/2"},
		{Partner: "b", Title: "Egy", URL: "https://b.example/1"},
	}

	result := deduper.Run(items)

	if len(result) > len(items) {
		t.Errorf("Dedup increased item count: %d -> %d", len(items), len(result))
	}
	// same title from different partners never merges
	if len(result) != 3 {
		t.Errorf("Cross-partner items must not merge here, got %d", len(result))
	}
}

func TestDeduper_Run_SizeLabelInParentheses(t *testing.T) {
	deduper := NewDeduper()

	items := []feed.Item{
		{Partner: "testshop", Title: "Futócipő (méret: 42)", URL: "https://shop.example/p/4"},
		{Partner: "testshop", Title: "Futócipő (méret: 44)", URL: "https://shop.example/p/4"},
	}

	result := deduper.Run(items)

	if len(result) != 1 {
		t.Errorf("Parenthesized size labels should collapse, got %d items", len(result))
	}
}

func TestStripVariantParams(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://shop.example/p/1?size=m&color=red", "https://shop.example/p/1?color=red"},
		{"https://shop.example/p/1?meret=42", "https://shop.example/p/1"},
		{"https://shop.example/p/1#variant-2", "https://shop.example/p/1"},
		{"https://shop.example/p/1", "https://shop.example/p/1"},
	}

	for _, tt := range tests {
		if got := stripVariantParams(tt.input); got != tt.expected {
			t.Errorf("stripVariantParams(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}
