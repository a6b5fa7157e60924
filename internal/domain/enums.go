package domain

import "fmt"

// StorageStrategy selects how a new definition is stored.
type StorageStrategy string

const (
	// StorageConsolidated appends the definition to a file holding many definitions.
	StorageConsolidated StorageStrategy = "consolidated"
	// StorageAtomic writes the definition as its own file inside a folder.
	StorageAtomic StorageStrategy = "atomic"
)

func (s StorageStrategy) String() string { return string(s) }

func (s StorageStrategy) IsValid() bool {
	switch s {
	case StorageConsolidated, StorageAtomic:
		return true
	}
	return false
}

// ParseStorageStrategy converts a raw picker or config value into a strategy.
func ParseStorageStrategy(raw string) (StorageStrategy, error) {
	s := StorageStrategy(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, raw)
	}
	return s, nil
}
