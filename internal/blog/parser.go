package blog

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// marker delimits the header block. It must be alone on its line.
const marker = "---"

// ErrNoHeader is returned for content without two marker lines.
var ErrNoHeader = errors.New("no header block")

// header holds the raw key/value pairs of a header block.
type header map[string]string

var byteOrderMark = []byte("\ufeff")

var headerFormat = frontmatter.NewFormat(marker, marker, unmarshalHeader)

// unmarshalHeader is the frontmatter.UnmarshalFunc for the key/value header
// format: one `key: value` pair per line, split on the first colon.
func unmarshalHeader(data []byte, v interface{}) error {
	h, ok := v.(*header)
	if !ok {
		return fmt.Errorf("unsupported header target %T", v)
	}
	*h = parseHeader(string(data))
	return nil
}

func parseHeader(text string) header {
	h := header{}
	for _, line := range strings.Split(text, "\n") {
		key, value, _ := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		h[key] = unquote(strings.TrimSpace(value))
	}
	return h
}

// unquote strips one layer of matching single or double quotes.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if (first == '"' || first == '\'') && first == last {
		return value[1 : len(value)-1]
	}
	return value
}

// splitContent separates the header pairs from the body. Text before the
// first marker line is discarded and the body is trimmed.
func splitContent(data []byte) (header, string, error) {
	data = bytes.TrimPrefix(data, byteOrderMark)
	start, ok := headerStart(data)
	if !ok {
		return nil, "", ErrNoHeader
	}

	var h header
	rest, err := frontmatter.MustParse(bytes.NewReader(data[start:]), &h, headerFormat)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return nil, "", ErrNoHeader
		}
		return nil, "", fmt.Errorf("failed to parse header: %w", err)
	}

	return h, strings.TrimSpace(string(rest)), nil
}

// headerStart returns the offset of the first marker line, provided a second
// marker line follows it.
func headerStart(data []byte) (int, bool) {
	start := -1
	offset := 0
	for offset < len(data) {
		line := data[offset:]
		next := len(data)
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
			next = offset + i + 1
		}

		if string(bytes.TrimSpace(line)) == marker {
			if start >= 0 {
				return start, true
			}
			start = offset
		}
		offset = next
	}
	return 0, false
}
