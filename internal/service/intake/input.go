package intake

import "github.com/heartmarshall/notedefs/internal/domain"

// FormSnapshot is an immutable copy of the raw form values taken at submit.
type FormSnapshot struct {
	Word       string
	Aliases    string
	Definition string
	Strategy   domain.StorageStrategy
	// File is the consolidated file picker value.
	File string
	// Folder is the atomic folder picker value.
	Folder string
}

// Destination returns the picker value that applies to the selected strategy.
func (f FormSnapshot) Destination() string {
	switch f.Strategy {
	case domain.StorageConsolidated:
		return f.File
	case domain.StorageAtomic:
		return f.Folder
	}
	return ""
}
