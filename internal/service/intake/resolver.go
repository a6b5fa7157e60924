package intake

import "github.com/heartmarshall/notedefs/internal/domain"

// Defaults are the destinations derived from a document's definition context.
// Either field is empty when no context entry resolved to an existing target.
type Defaults struct {
	File   string
	Folder string
}

// ContextResolver derives default destinations from a definition context.
type ContextResolver struct {
	paths pathChecker
}

// NewContextResolver creates a resolver backed by the given path predicates.
func NewContextResolver(paths pathChecker) *ContextResolver {
	return &ContextResolver{paths: paths}
}

// Resolve scans the context twice, left to right and independently: once for
// the first existing folder and once for the first existing file. The two
// scans may pick the same entry. An absent context resolves to empty defaults.
func (r *ContextResolver) Resolve(dctx domain.DefinitionContext) Defaults {
	if dctx.IsAbsent() {
		return Defaults{}
	}
	return Defaults{
		File:   r.firstFile(dctx),
		Folder: r.firstFolder(dctx),
	}
}

// firstFolder returns the first entry, stripped of trailing slashes, that
// names an existing folder. Entries that strip to "" are still offered to
// the predicate.
func (r *ContextResolver) firstFolder(dctx domain.DefinitionContext) string {
	for _, p := range dctx {
		if folder := domain.TrimTrailingSlashes(p); r.paths.IsFolder(folder) {
			return folder
		}
	}
	return ""
}

// firstFile returns the first entry that names an existing file, verbatim.
func (r *ContextResolver) firstFile(dctx domain.DefinitionContext) string {
	for _, p := range dctx {
		if r.paths.IsFile(p) {
			return p
		}
	}
	return ""
}
