package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/findora-hu/findora/app/feed"
)

// FileFetcher hydrates store keys from the published page files on disk.
type FileFetcher struct {
	baseDir string
}

var _ Fetcher = (*FileFetcher)(nil)

func NewFileFetcher(baseDir string) *FileFetcher {
	return &FileFetcher{baseDir: baseDir}
}

// Fetch reads every page of the key's scope and concatenates the items. An
// empty Category means the partner's global scope.
func (f *FileFetcher) Fetch(ctx context.Context, key Key) ([]feed.Item, error) {
	dir := filepath.Join(f.baseDir, key.Partner)
	if key.Category != "" {
		dir = filepath.Join(dir, key.Category)
	}

	metaData, err := os.ReadFile(filepath.Join(dir, "meta.json"))
	if err != nil {
		return nil, fmt.Errorf("read meta.json: %w", err)
	}

	var meta struct {
		PageCount int `json:"page_count"`
	}
	if err := json.Unmarshal(metaData, &meta); err != nil {
		return nil, fmt.Errorf("parse meta.json: %w", err)
	}

	var items []feed.Item
	for n := 1; n <= meta.PageCount; n++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		name := fmt.Sprintf("page-%04d.json", n)
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		var page struct {
			Items []feed.Item `json:"items"`
		}
		if err := json.Unmarshal(data, &page); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		items = append(items, page.Items...)
	}

	return items, nil
}
