package category

import (
	"encoding/json"
	"fmt"
	"os"
)

// Rule is one externally authored classification rule: a substring pattern
// mapped to a category slug. A rule with an empty pattern matches
// unconditionally and acts as that partner's fallback.
type Rule struct {
	Pattern string `json:"pattern"`
	CatID   string `json:"catId"`
}

// RuleMap holds the per-partner ordered rule lists loaded from
// category-map.json.
type RuleMap map[string][]Rule

// LoadRuleMap reads the rule table. A missing file is not an error: partners
// without rules simply skip that cascade stage.
func LoadRuleMap(path string) (RuleMap, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return RuleMap{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read category map: %w", err)
	}

	var rules RuleMap
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse category map: %w", err)
	}
	return rules, nil
}
