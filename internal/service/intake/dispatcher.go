package intake

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/notedefs/internal/domain"
)

// SubmissionDispatcher turns validated form values into a definition record
// and hands it to the external writer.
type SubmissionDispatcher struct {
	log    *slog.Logger
	files  fileLookup
	writer definitionWriter
}

// NewSubmissionDispatcher creates a dispatcher.
func NewSubmissionDispatcher(logger *slog.Logger, files fileLookup, writer definitionWriter) *SubmissionDispatcher {
	return &SubmissionDispatcher{
		log:    logger,
		files:  files,
		writer: writer,
	}
}

// Build assembles the record for a validated snapshot. Word and definition
// are taken verbatim. A consolidated file that does not resolve is carried
// as a nil File; the writer decides what to do with it. Atomic folders are
// passed through without any existence check.
func (d *SubmissionDispatcher) Build(snap FormSnapshot) domain.DefinitionRecord {
	aliases := domain.ParseAliases(snap.Aliases)

	switch snap.Strategy {
	case domain.StorageConsolidated:
		file, ok := d.files.LookupFile(snap.File)
		if !ok {
			file = nil
		}
		return domain.NewConsolidatedRecord(snap.Word, snap.Definition, aliases, file)
	case domain.StorageAtomic:
		return domain.NewAtomicRecord(snap.Word, snap.Definition, aliases, snap.Folder)
	}

	// Unreachable after validation; keep the strategy and no target.
	return domain.DefinitionRecord{
		Strategy:   snap.Strategy,
		Key:        domain.DefinitionKey(snap.Word),
		Word:       snap.Word,
		Aliases:    aliases,
		Definition: snap.Definition,
	}
}

// Dispatch builds the record and hands it, with its destination path, to the
// writer. The record is not retained and the writer's outcome is not observed.
func (d *SubmissionDispatcher) Dispatch(ctx context.Context, snap FormSnapshot) {
	rec := d.Build(snap)
	destination := snap.Destination()

	d.log.InfoContext(ctx, "dispatching definition",
		slog.String("key", rec.Key),
		slog.String("strategy", rec.Strategy.String()),
		slog.String("destination", destination),
		slog.Bool("file_resolved", rec.File != nil),
	)

	d.writer.AddDefinition(ctx, rec, destination)
}
