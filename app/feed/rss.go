package feed

import (
	"bytes"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// DecodeRSS parses a Google-Shopping style RSS/Atom product feed. The g:
// extension fields (price, sale_price, image_link, product_type, ...) are
// folded into the raw item under their bare names, same as the XML path.
func DecodeRSS(data []byte) ([]RawItem, error) {
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	items := make([]RawItem, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		m := RawItem{}
		setDefault(m, "title", entry.Title)
		setDefault(m, "link", entry.Link)
		setDefault(m, "description", entry.Description)
		setDefault(m, "guid", entry.GUID)
		if entry.Image != nil {
			setDefault(m, "image", entry.Image.URL)
		}
		if len(entry.Categories) > 0 {
			setDefault(m, "category", entry.Categories[0])
		}

		for _, ext := range entry.Extensions {
			for name, values := range ext {
				key := stripNS(name)
				if altImageKeys[key] {
					var list []string
					for _, v := range values {
						if v.Value != "" {
							list = append(list, v.Value)
						}
					}
					if len(list) > 0 {
						m[key] = list
					}
					continue
				}
				if len(values) > 0 && values[0].Value != "" {
					setDefault(m, key, values[0].Value)
				}
			}
		}

		items = append(items, m)
	}
	return items, nil
}
