package feed

import (
	"testing"
)

func TestDecodeRSS_GoogleShoppingExtensions(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>
<rss version="2.0" xmlns:g="http://base.google.com/ns/1.0">
  <channel>
    <title>Shop feed</title>
    <item>
      <title>Gaming egér</title>
      <link>https://shop.example/p/1</link>
      <guid>SKU-100</guid>
      <g:price>12990 HUF</g:price>
      <g:sale_price>9990 HUF</g:sale_price>
      <g:image_link>https://shop.example/i/1.jpg</g:image_link>
      <g:product_type>Elektronika &gt; Periféria</g:product_type>
      <g:additional_image_link>https://shop.example/i/1b.jpg</g:additional_image_link>
      <g:additional_image_link>https://shop.example/i/1c.jpg</g:additional_image_link>
    </item>
  </channel>
</rss>`)

	items, err := DecodeRSS(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}

	raw := items[0]
	if raw.First("title") != "Gaming egér" {
		t.Errorf("Unexpected title: %q", raw.First("title"))
	}
	if raw.First("sale_price") != "9990 HUF" {
		t.Errorf("Extension field not folded: %q", raw.First("sale_price"))
	}
	if raw.First("image_link") != "https://shop.example/i/1.jpg" {
		t.Errorf("Unexpected image: %q", raw.First("image_link"))
	}

	alt, ok := raw["additional_image_link"].([]string)
	if !ok || len(alt) != 2 {
		t.Errorf("Expected 2 additional images, got %v", raw["additional_image_link"])
	}
}

func TestDecodeRSS_ResolvesThroughPipeline(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>
<rss version="2.0" xmlns:g="http://base.google.com/ns/1.0">
  <channel>
    <title>Shop feed</title>
    <item>
      <title>Gaming egér</title>
      <link>https://shop.example/p/1</link>
      <guid>SKU-100</guid>
      <g:price>12990 HUF</g:price>
    </item>
  </channel>
</rss>`)

	raws, err := DecodeRSS(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	item, ok := NewResolver().Run("testshop", raws[0])
	if !ok {
		t.Fatal("Expected RSS record to resolve")
	}
	if item.ID != "SKU-100" {
		t.Errorf("Expected guid as id, got %q", item.ID)
	}
	if item.Price == nil || *item.Price != 12990 {
		t.Errorf("Expected price 12990, got %v", item.Price)
	}
}
