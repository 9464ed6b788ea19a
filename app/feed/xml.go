package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"
)

// altImageKeys are the child tags whose repeated values are accumulated into
// ordered lists instead of a single scalar.
var altImageKeys = map[string]bool{
	"imgurl_alternative":    true,
	"additional_image_link": true,
	"additional_image_url":  true,
	"images":                true,
	"image2":                true,
	"image3":                true,
}

// itemTagNames are tried in order when locating product nodes; the first tag
// name with any hits wins.
var itemTagNames = []string{"item", "product", "shopitem", "entry"}

// itemTagFragments is the fallback: any node whose tag merely contains one
// of these fragments.
var itemTagFragments = []string{"item", "product", "offer", "shop"}

type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

// DecodeXML parses an arbitrary partner product XML document into raw items.
// Tag and attribute names are lowercased with namespace prefixes stripped,
// so downstream key lookup does not care about feed-specific casing.
func DecodeXML(data []byte) ([]RawItem, error) {
	var root xmlNode
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	candidates := findItemNodes(&root)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no product nodes found in XML document")
	}

	items := make([]RawItem, 0, len(candidates))
	for _, n := range candidates {
		items = append(items, flattenNode(n))
	}
	return items, nil
}

func findItemNodes(root *xmlNode) []*xmlNode {
	for _, name := range itemTagNames {
		var hits []*xmlNode
		walkNodes(root, func(n *xmlNode) bool {
			if stripNS(n.XMLName.Local) == name {
				hits = append(hits, n)
				return false // do not descend into matched items
			}
			return true
		})
		if len(hits) > 0 {
			return hits
		}
	}

	var hits []*xmlNode
	walkNodes(root, func(n *xmlNode) bool {
		tag := stripNS(n.XMLName.Local)
		for _, fragment := range itemTagFragments {
			if strings.Contains(tag, fragment) {
				hits = append(hits, n)
				return false
			}
		}
		return true
	})
	return hits
}

func walkNodes(n *xmlNode, visit func(*xmlNode) bool) {
	for i := range n.Children {
		c := &n.Children[i]
		if visit(c) {
			walkNodes(c, visit)
		}
	}
}

// flattenNode folds an item element into a flat RawItem. Scalar fields keep
// the first non-empty text found, shallow values winning over deeply nested
// duplicates; alt-image tags accumulate into ordered lists, descending one
// level into wrapper elements like <images><image>...</image></images>.
func flattenNode(n *xmlNode) RawItem {
	m := RawItem{}
	// keys already holding a direct child's text; later siblings with the
	// same tag never replace the first one
	direct := map[string]bool{}

	if txt := strings.TrimSpace(n.Text); txt != "" {
		setDefault(m, stripNS(n.XMLName.Local), txt)
	}
	for _, a := range n.Attrs {
		setDefault(m, stripNS(a.Name.Local), a.Value)
	}

	for i := range n.Children {
		c := &n.Children[i]
		key := stripNS(c.XMLName.Local)
		value := strings.TrimSpace(c.Text)

		if altImageKeys[key] {
			list, _ := m[key].([]string)
			if value != "" {
				list = append(list, value)
			} else {
				list = append(list, childTexts(c)...)
			}
			m[key] = list
			continue
		}

		if value != "" {
			if !direct[key] {
				m[key] = value
				direct[key] = true
			}
			continue
		}

		for subKey, subValue := range flattenNode(c) {
			setDefault(m, subKey, subValue)
		}
	}

	return m
}

func childTexts(n *xmlNode) []string {
	var texts []string
	for i := range n.Children {
		if v := strings.TrimSpace(n.Children[i].Text); v != "" {
			texts = append(texts, v)
		}
	}
	return texts
}

func setDefault(m RawItem, key string, value any) {
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}

func stripNS(tag string) string {
	if i := strings.LastIndex(tag, ":"); i >= 0 {
		tag = tag[i+1:]
	}
	return strings.ToLower(tag)
}
