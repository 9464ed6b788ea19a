package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/findora-hu/findora/app/feed"
)

// Writer publishes paginated scopes as static JSON files. Each scope
// directory gets a meta.json plus one page-NNNN.json per page; stale page
// files from a previous, larger run are removed first.
type Writer struct {
	baseDir string
}

func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

type pageFile struct {
	Items []feed.Item `json:"items"`
}

// WriteScope publishes one scope under baseDir/<relDir>/ and returns the
// number of pages written.
func (w *Writer) WriteScope(relDir, partner, scope string, items []feed.Item, pageSize int) (int, error) {
	dir := filepath.Join(w.baseDir, relDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create scope directory: %w", err)
	}

	if err := removeStalePages(dir); err != nil {
		return 0, err
	}

	pages := Paginate(items, pageSize)

	for _, page := range pages {
		name := fmt.Sprintf("page-%04d.json", page.Number)
		if err := writeJSON(filepath.Join(dir, name), pageFile{Items: page.Items}); err != nil {
			return 0, fmt.Errorf("write %s: %w", name, err)
		}
	}

	meta := newMeta(partner, scope, len(items), pageSize, len(pages))
	if err := writeJSON(filepath.Join(dir, "meta.json"), meta); err != nil {
		return 0, fmt.Errorf("write meta.json: %w", err)
	}

	return len(pages), nil
}

func removeStalePages(dir string) error {
	stale, err := filepath.Glob(filepath.Join(dir, "page-*.json"))
	if err != nil {
		return fmt.Errorf("list stale pages: %w", err)
	}
	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove stale page: %w", err)
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
