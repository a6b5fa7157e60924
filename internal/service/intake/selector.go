package intake

import (
	"github.com/heartmarshall/notedefs/internal/config"
	"github.com/heartmarshall/notedefs/internal/domain"
)

// TypeSelector picks the storage strategy a new form starts with.
type TypeSelector struct {
	cfg config.DefinitionsConfig
}

// NewTypeSelector creates a selector for the given definition settings.
func NewTypeSelector(cfg config.DefinitionsConfig) *TypeSelector {
	return &TypeSelector{cfg: cfg}
}

// Select starts from the configured default. With automatic detection on,
// only the first context entry is compared: an exact match of the default
// file selects consolidated, a match of the default folder plus "/" selects
// atomic. Later entries are never consulted, even when one would match.
// Unresolved defaults compare as "", so a primary of "" selects consolidated
// and a primary of "/" selects atomic.
func (s *TypeSelector) Select(defaults Defaults, dctx domain.DefinitionContext) domain.StorageStrategy {
	strategy := s.cfg.DefaultFileType

	if !s.cfg.AutomaticallyDetermineNewDefTypes {
		return strategy
	}
	primary, ok := dctx.Primary()
	if !ok {
		return strategy
	}

	switch {
	case primary == defaults.File:
		return domain.StorageConsolidated
	case primary == defaults.Folder+"/":
		return domain.StorageAtomic
	}
	return strategy
}
