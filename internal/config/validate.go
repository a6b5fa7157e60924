package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Definitions.validate(); err != nil {
		return fmt.Errorf("definitions: %w", err)
	}
	if err := c.Workspace.validate(); err != nil {
		return fmt.Errorf("workspace: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (d *DefinitionsConfig) validate() error {
	if !d.DefaultFileType.IsValid() {
		return fmt.Errorf("default_file_type must be consolidated or atomic (got %q)", d.DefaultFileType)
	}
	if strings.TrimSpace(d.ContextKey) == "" {
		return fmt.Errorf("context_key is required")
	}
	return nil
}

func (w *WorkspaceConfig) validate() error {
	if w.Root == "" {
		return fmt.Errorf("root is required")
	}
	if !filepath.IsLocal(filepath.FromSlash(w.DefFolder)) {
		return fmt.Errorf("def_folder must be a relative path inside the workspace (got %q)", w.DefFolder)
	}
	if strings.TrimSpace(w.TypeKey) == "" {
		return fmt.Errorf("type_key is required")
	}
	return nil
}
