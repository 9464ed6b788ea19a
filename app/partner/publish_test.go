package partner

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePartnersList(t *testing.T) {
	dir := t.TempDir()

	configs := []*Config{
		{ID: "alza", Name: "Alza.hu", Group: "tech", Category: ConfigCategories{Default: "elektronika"}},
		{ID: "eoptika", Name: "eOptika", Group: "vision", Category: ConfigCategories{Default: "latas"}},
	}

	if err := WritePartnersList(dir, configs); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "partners.json"))
	if err != nil {
		t.Fatalf("Failed to read partners.json: %v", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("Failed to parse partners.json: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].ID != "alza" || records[0].DefaultCategory != "elektronika" {
		t.Errorf("Unexpected first record: %+v", records[0])
	}
}

func TestWritePartnersList_Empty(t *testing.T) {
	dir := t.TempDir()

	if err := WritePartnersList(dir, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "partners.json"))
	if err != nil {
		t.Fatalf("Failed to read partners.json: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Expected empty array, got %s", data)
	}
}
