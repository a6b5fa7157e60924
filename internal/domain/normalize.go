package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefinitionKey returns the lookup key for a headword: its full Unicode
// lowercase form. Nothing else is changed, so whitespace and punctuation
// survive exactly as typed.
func DefinitionKey(word string) string {
	if word == "" {
		return ""
	}
	// A Caser keeps state between calls, so build one per use.
	return cases.Lower(language.Und).String(word)
}

// ParseAliases splits comma-separated alias text into trimmed aliases.
//
// Order is preserved and nothing is deduplicated or case-folded.
// Empty input yields an empty (non-nil) slice, never a slice holding "".
func ParseAliases(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	aliases := make([]string, 0, len(parts))
	for _, p := range parts {
		aliases = append(aliases, strings.TrimSpace(p))
	}
	return aliases
}

// TrimTrailingSlashes removes every trailing "/" from a workspace path.
func TrimTrailingSlashes(path string) string {
	return strings.TrimRight(path, "/")
}
