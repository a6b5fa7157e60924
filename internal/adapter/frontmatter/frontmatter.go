// Package frontmatter reads the YAML metadata block at the top of a note.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	fm "github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

var (
	yamlFormat = fm.NewFormat("---", "---", yaml.Unmarshal)
	bom        = []byte("\ufeff")
)

// Metadata is the decoded frontmatter mapping.
type Metadata map[string]any

// Split separates a leading "---" delimited YAML block from the note body.
// Content without a complete block yields nil metadata and the content
// unchanged; an empty block yields empty, non-nil metadata.
func Split(content []byte) (Metadata, []byte, error) {
	content = bytes.TrimPrefix(content, bom)

	var meta Metadata
	body, err := fm.MustParse(bytes.NewReader(content), &meta, yamlFormat)
	if errors.Is(err, fm.ErrNotFound) {
		return nil, content, nil
	}
	if err != nil {
		return nil, content, fmt.Errorf("frontmatter: decode yaml: %w", err)
	}
	if meta == nil {
		meta = Metadata{}
	}
	return meta, body, nil
}

// String returns the value under key when it is a string.
func (m Metadata) String(key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// StringList returns the value under key as a list of strings. A single
// string counts as a one-entry list and non-string items are skipped.
// ok is false when the key is missing, null, or not a string or sequence.
func (m Metadata) StringList(key string) ([]string, bool) {
	switch v := m[key].(type) {
	case string:
		return []string{v}, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	}
	return nil, false
}
