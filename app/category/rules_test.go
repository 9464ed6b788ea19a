package category

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRuleMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "category-map.json")

	content := `{
  "testshop": [
    {"pattern": "játék", "catId": "jatekok"},
    {"pattern": "", "catId": "multi"}
  ]
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write rule map: %v", err)
	}

	rules, err := LoadRuleMap(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	partnerRules, ok := rules["testshop"]
	if !ok || len(partnerRules) != 2 {
		t.Fatalf("Expected 2 rules for testshop, got %v", rules)
	}
	if partnerRules[0].Pattern != "játék" || partnerRules[0].CatID != "jatekok" {
		t.Errorf("Unexpected first rule: %+v", partnerRules[0])
	}
	// rule order must be preserved, the empty pattern is a trailing fallback
	if partnerRules[1].Pattern != "" {
		t.Errorf("Expected fallback rule last, got %+v", partnerRules[1])
	}
}

func TestLoadRuleMap_MissingFile(t *testing.T) {
	rules, err := LoadRuleMap("/nonexistent/category-map.json")
	if err != nil {
		t.Fatalf("Missing rule map should not be an error, got %v", err)
	}
	if rules == nil || len(rules) != 0 {
		t.Errorf("Expected empty rule map, got %v", rules)
	}
}

func TestLoadRuleMap_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "category-map.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := LoadRuleMap(path); err == nil {
		t.Error("Expected error for malformed rule map")
	}
}
