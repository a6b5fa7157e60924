package domain

import "slices"

// DefinitionContext is the ordered list of candidate destination paths a
// document declares in its metadata. A nil context means the document
// declares none; order matters and the first entry is the primary one.
type DefinitionContext []string

// Snapshot returns an independent copy so later edits to the source slice
// cannot reach a session that captured it.
func (c DefinitionContext) Snapshot() DefinitionContext {
	if c == nil {
		return nil
	}
	return slices.Clone(c)
}

// IsAbsent reports whether the document declared no context at all.
func (c DefinitionContext) IsAbsent() bool {
	return c == nil
}

// Primary returns the first entry, if any.
func (c DefinitionContext) Primary() (string, bool) {
	if len(c) == 0 {
		return "", false
	}
	return c[0], true
}
