package feed

import (
	"encoding/json"
	"fmt"
	"strings"
)

// jsonItemListKeys are tried when a JSON feed wraps its product list in an
// envelope object instead of being a bare array.
var jsonItemListKeys = []string{"items", "products", "data", "results", "offers"}

// DecodeJSON parses a JSON product feed into raw items. Accepts either a
// bare array of objects or an envelope object holding the list under a
// well-known key. Non-object list entries are skipped.
func DecodeJSON(data []byte) ([]RawItem, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	var list []any
	switch v := payload.(type) {
	case []any:
		list = v
	case map[string]any:
		lowered := lowerKeys(v)
		for _, key := range jsonItemListKeys {
			if entries, ok := lowered[key].([]any); ok {
				list = entries
				break
			}
		}
		if list == nil {
			return nil, fmt.Errorf("no product list found in JSON document")
		}
	default:
		return nil, fmt.Errorf("unexpected JSON document type %T", payload)
	}

	items := make([]RawItem, 0, len(list))
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, RawItem(flattenJSON(obj)))
	}
	return items, nil
}

func lowerKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

// flattenJSON lowercases keys and normalizes values: scalars stay, arrays
// become string lists of their scalar members, nested objects fold in one
// level with existing shallow keys winning.
func flattenJSON(obj map[string]any) map[string]any {
	m := make(map[string]any, len(obj))
	for k, v := range obj {
		key := stripNS(k)
		switch val := v.(type) {
		case []any:
			var list []string
			for _, e := range val {
				if s := scalarString(e); s != "" {
					list = append(list, s)
				}
			}
			if len(list) > 0 {
				m[key] = list
			}
		case map[string]any:
			for subKey, subValue := range flattenJSON(val) {
				if _, ok := m[subKey]; !ok {
					m[subKey] = subValue
				}
			}
		default:
			if v != nil {
				m[key] = v
			}
		}
	}
	return m
}

func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", val), "0"), ".")
	default:
		return ""
	}
}
