package intake

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/notedefs/internal/config"
	"github.com/heartmarshall/notedefs/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contextReader interface {
	DefinitionContext(docPath string) (domain.DefinitionContext, error)
}

type storeCatalog interface {
	ConsolidatedFiles() []string
	DefFolders() []string
}

type pathChecker interface {
	IsFolder(path string) bool
	IsFile(path string) bool
}

type fileLookup interface {
	LookupFile(path string) (*domain.FileRef, bool)
}

type definitionWriter interface {
	AddDefinition(ctx context.Context, rec domain.DefinitionRecord, destination string)
}

type notifier interface {
	Notify(message string)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service opens add-definition form sessions.
type Service struct {
	log        *slog.Logger
	contexts   contextReader
	stores     storeCatalog
	resolver   *ContextResolver
	selector   *TypeSelector
	validator  *SubmissionValidator
	dispatcher *SubmissionDispatcher
	notices    notifier
}

// NewService creates a new intake service.
func NewService(
	logger *slog.Logger,
	contexts contextReader,
	stores storeCatalog,
	paths pathChecker,
	files fileLookup,
	writer definitionWriter,
	notices notifier,
	cfg config.DefinitionsConfig,
) *Service {
	log := logger.With("service", "intake")
	return &Service{
		log:        log,
		contexts:   contexts,
		stores:     stores,
		resolver:   NewContextResolver(paths),
		selector:   NewTypeSelector(cfg),
		validator:  NewSubmissionValidator(),
		dispatcher: NewSubmissionDispatcher(log, files, writer),
		notices:    notices,
	}
}

// OpenInput holds the parameters for opening a form session.
type OpenInput struct {
	// DocumentPath is the document being viewed; empty when none is active.
	DocumentPath string
	// InitialWord pre-fills the headword, typically with the selected text.
	InitialWord string
}

// Open snapshots the document's definition context, resolves the default
// destinations and the initial storage strategy, and returns a session in
// the Open state.
func (s *Service) Open(ctx context.Context, input OpenInput) *Session {
	id := uuid.New()
	log := s.log.With(
		slog.String("session_id", id.String()),
		slog.String("document", input.DocumentPath),
	)

	dctx := s.readContext(ctx, log, input.DocumentPath)
	defaults := s.resolver.Resolve(dctx)
	strategy := s.selector.Select(defaults, dctx)

	fileOptions := s.stores.ConsolidatedFiles()
	folderOptions := s.stores.DefFolders()

	form := FormSnapshot{
		Word:     input.InitialWord,
		Strategy: strategy,
		File:     firstNonEmpty(defaults.File, fileOptions),
		Folder:   firstNonEmpty(defaults.Folder, folderOptions),
	}

	log.DebugContext(ctx, "session opened",
		slog.Int("context_entries", len(dctx)),
		slog.String("default_file", defaults.File),
		slog.String("default_folder", defaults.Folder),
		slog.String("strategy", strategy.String()),
	)

	return &Session{
		id:            id,
		log:           log,
		docPath:       input.DocumentPath,
		context:       dctx,
		defaults:      defaults,
		fileOptions:   fileOptions,
		folderOptions: folderOptions,
		form:          form,
		state:         StateOpen,
		validator:     s.validator,
		dispatcher:    s.dispatcher,
		notices:       s.notices,
	}
}

// readContext returns the document's context snapshot. Failures degrade to
// an absent context so defaults fall back instead of blocking the form.
func (s *Service) readContext(ctx context.Context, log *slog.Logger, docPath string) domain.DefinitionContext {
	if docPath == "" {
		return nil
	}
	dctx, err := s.contexts.DefinitionContext(docPath)
	if err != nil {
		log.WarnContext(ctx, "read definition context", slog.String("error", err.Error()))
		return nil
	}
	return dctx.Snapshot()
}

// firstNonEmpty returns preferred if set, else the first option, else "".
func firstNonEmpty(preferred string, options []string) string {
	if preferred != "" {
		return preferred
	}
	if len(options) > 0 {
		return options[0]
	}
	return ""
}
