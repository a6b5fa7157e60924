package domain

// FileRef is a resolved reference to an existing consolidated definition file.
type FileRef struct {
	Path string
	Name string
}

// DefinitionRecord is a fully built definition handed to the external writer.
//
// Consolidated records carry File (nil when the path did not resolve) and
// never a Folder; atomic records carry Folder and never a File.
type DefinitionRecord struct {
	Strategy   StorageStrategy
	Key        string
	Word       string
	Aliases    []string
	Definition string
	File       *FileRef
	Folder     string
}

// NewConsolidatedRecord builds a record targeting a consolidated file.
func NewConsolidatedRecord(word, definition string, aliases []string, file *FileRef) DefinitionRecord {
	return DefinitionRecord{
		Strategy:   StorageConsolidated,
		Key:        DefinitionKey(word),
		Word:       word,
		Aliases:    aliases,
		Definition: definition,
		File:       file,
	}
}

// NewAtomicRecord builds a record targeting a folder of atomic definitions.
func NewAtomicRecord(word, definition string, aliases []string, folder string) DefinitionRecord {
	return DefinitionRecord{
		Strategy:   StorageAtomic,
		Key:        DefinitionKey(word),
		Word:       word,
		Aliases:    aliases,
		Definition: definition,
		Folder:     folder,
	}
}
