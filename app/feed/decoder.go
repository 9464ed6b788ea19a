package feed

import (
	"bytes"
	"fmt"
)

// Decode parses one fetched feed document into raw items. format comes from
// the partner config ("xml", "json", "rss"); when empty the document is
// sniffed, since partners rarely document their own feed format correctly.
func Decode(data []byte, format string) ([]RawItem, error) {
	switch format {
	case "xml":
		return DecodeXML(data)
	case "json":
		return DecodeJSON(data)
	case "rss":
		return DecodeRSS(data)
	case "":
		return decodeSniffed(data)
	default:
		return nil, fmt.Errorf("unsupported feed format %q", format)
	}
}

func decodeSniffed(data []byte) ([]RawItem, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n\xef\xbb\xbf")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty feed document")
	}

	if trimmed[0] == '{' || trimmed[0] == '[' {
		return DecodeJSON(data)
	}

	head := bytes.ToLower(trimmed[:min(len(trimmed), 512)])
	if bytes.Contains(head, []byte("<rss")) || bytes.Contains(head, []byte("<feed")) {
		return DecodeRSS(data)
	}

	return DecodeXML(data)
}
