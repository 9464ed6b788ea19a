package partner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Record is the partner descriptor published in partners.json for the
// browser client.
type Record struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Group           string `json:"group,omitempty"`
	DefaultCategory string `json:"default_category,omitempty"`
}

// WritePartnersList publishes the loaded partner configs as
// <outDir>/partners.json, replacing the previous file wholesale.
func WritePartnersList(outDir string, configs []*Config) error {
	records := make([]Record, 0, len(configs))
	for _, c := range configs {
		records = append(records, Record{
			ID:              c.ID,
			Name:            c.Name,
			Group:           c.Group,
			DefaultCategory: c.Category.Default,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal partner list: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(outDir, "partners.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
