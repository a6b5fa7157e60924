// Package vault exposes a notes directory on disk as the workspace the
// intake service consults: path predicates, the known definition stores,
// file lookup and each document's declared definition context.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/notedefs/internal/adapter/frontmatter"
	"github.com/heartmarshall/notedefs/internal/config"
	"github.com/heartmarshall/notedefs/internal/domain"
)

// Vault is a workspace rooted at a directory. Paths it accepts and returns
// are workspace-relative and use "/" separators.
type Vault struct {
	log         *slog.Logger
	root        string
	defFolder   string
	typeKey     string
	contextKey  string
	defaultType domain.StorageStrategy

	consolidated []string
	folders      []string
	files        map[string]*domain.FileRef
}

// New creates a Vault. Call Scan before reading the known stores.
func New(logger *slog.Logger, ws config.WorkspaceConfig, defs config.DefinitionsConfig) *Vault {
	return &Vault{
		log:         logger.With("adapter", "vault"),
		root:        ws.Root,
		defFolder:   path.Clean(filepath.ToSlash(ws.DefFolder)),
		typeKey:     ws.TypeKey,
		contextKey:  defs.ContextKey,
		defaultType: defs.DefaultFileType,
		files:       map[string]*domain.FileRef{},
	}
}

// Scan indexes the definition folder: every directory in it (itself
// included) is a definition folder, and every markdown file whose type is
// consolidated is a consolidated definition file. Files without a type key
// take the configured default type. A missing definition folder yields no
// stores.
func (v *Vault) Scan() error {
	v.consolidated = nil
	v.folders = nil
	v.files = map[string]*domain.FileRef{}

	base, ok := v.osPath(v.defFolder)
	if !ok {
		return fmt.Errorf("vault: definition folder %q is outside the workspace", v.defFolder)
	}
	if !isDir(base) {
		v.log.Warn("definition folder not found", slog.String("path", v.defFolder))
		return nil
	}

	err := filepath.WalkDir(base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != base && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(v.root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			v.folders = append(v.folders, rel)
			return nil
		}
		if !strings.EqualFold(filepath.Ext(p), ".md") {
			return nil
		}

		strategy, err := v.fileType(p)
		if err != nil {
			v.log.Warn("skip definition file", slog.String("path", rel), slog.String("error", err.Error()))
			return nil
		}
		if strategy == domain.StorageConsolidated {
			v.consolidated = append(v.consolidated, rel)
			v.files[rel] = &domain.FileRef{Path: rel, Name: path.Base(rel)}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("vault: scan %s: %w", v.defFolder, err)
	}

	v.log.Debug("vault scanned",
		slog.Int("consolidated_files", len(v.consolidated)),
		slog.Int("def_folders", len(v.folders)),
	)
	return nil
}

func (v *Vault) fileType(osPath string) (domain.StorageStrategy, error) {
	content, err := os.ReadFile(osPath)
	if err != nil {
		return "", err
	}
	meta, _, err := frontmatter.Split(content)
	if err != nil {
		return "", err
	}
	raw, ok := meta.String(v.typeKey)
	if !ok || raw == "" {
		return v.defaultType, nil
	}
	return domain.ParseStorageStrategy(raw)
}

// ConsolidatedFiles lists the known consolidated definition files in scan order.
func (v *Vault) ConsolidatedFiles() []string {
	return append([]string(nil), v.consolidated...)
}

// DefFolders lists the known definition folders in scan order.
func (v *Vault) DefFolders() []string {
	return append([]string(nil), v.folders...)
}

// LookupFile resolves a path to a known consolidated definition file.
func (v *Vault) LookupFile(p string) (*domain.FileRef, bool) {
	ref, ok := v.files[p]
	return ref, ok
}

// IsFolder reports whether p names an existing directory in the workspace.
func (v *Vault) IsFolder(p string) bool {
	full, ok := v.osPath(p)
	return ok && isDir(full)
}

// IsFile reports whether p names an existing regular file in the workspace.
func (v *Vault) IsFile(p string) bool {
	full, ok := v.osPath(p)
	if !ok {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.Mode().IsRegular()
}

// DefinitionContext reads the definition context declared in a document's
// frontmatter. A document without the key yields an absent (nil) context.
func (v *Vault) DefinitionContext(docPath string) (domain.DefinitionContext, error) {
	full, ok := v.osPath(docPath)
	if !ok {
		return nil, fmt.Errorf("vault: document %q is outside the workspace", docPath)
	}
	content, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("vault: document %q: %w", docPath, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("vault: read %s: %w", docPath, err)
	}

	meta, _, err := frontmatter.Split(content)
	if err != nil {
		return nil, fmt.Errorf("vault: %s: %w", docPath, err)
	}
	paths, ok := meta.StringList(v.contextKey)
	if !ok {
		return nil, nil
	}
	return domain.DefinitionContext(paths), nil
}

// osPath maps a workspace path to an OS path, refusing paths that are empty,
// absolute or escape the root.
func (v *Vault) osPath(p string) (string, bool) {
	if p == "" {
		return "", false
	}
	local := filepath.FromSlash(p)
	if !filepath.IsLocal(local) {
		return "", false
	}
	return filepath.Join(v.root, local), true
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
