// Package sink is a reference definition writer: it appends each dispatched
// record as one JSON line. It does not decide any on-disk definition format.
package sink

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"github.com/heartmarshall/notedefs/internal/domain"
	"github.com/heartmarshall/notedefs/pkg/ctxutil"
)

// Line is the JSON shape of one written record.
type Line struct {
	Strategy    string   `json:"strategy"`
	Key         string   `json:"key"`
	Word        string   `json:"word"`
	Aliases     []string `json:"aliases"`
	Definition  string   `json:"definition"`
	File        *string  `json:"file"`
	FileName    string   `json:"file_name,omitempty"`
	Folder      string   `json:"folder,omitempty"`
	Destination string   `json:"destination"`
	Document    string   `json:"document,omitempty"`
	SessionID   string   `json:"session_id,omitempty"`
}

// Writer appends records to an io.Writer. It is safe for concurrent use.
type Writer struct {
	log *slog.Logger

	mu  sync.Mutex
	enc *json.Encoder
}

// New creates a Writer over w.
func New(logger *slog.Logger, w io.Writer) *Writer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Writer{
		log: logger.With("adapter", "sink"),
		enc: enc,
	}
}

// AddDefinition writes the record. Failures are logged, not returned:
// the caller does not observe the writer's outcome.
func (s *Writer) AddDefinition(ctx context.Context, rec domain.DefinitionRecord, destination string) {
	line := toLine(rec, destination)
	if id, ok := ctxutil.SessionIDFromCtx(ctx); ok {
		line.SessionID = id.String()
	}
	line.Document = ctxutil.DocumentPathFromCtx(ctx)

	s.mu.Lock()
	err := s.enc.Encode(line)
	s.mu.Unlock()

	if err != nil {
		s.log.ErrorContext(ctx, "write definition",
			slog.String("key", rec.Key),
			slog.String("destination", destination),
			slog.String("error", err.Error()),
		)
		return
	}
	s.log.DebugContext(ctx, "definition written", slog.String("key", rec.Key))
}

func toLine(rec domain.DefinitionRecord, destination string) Line {
	aliases := rec.Aliases
	if aliases == nil {
		aliases = []string{}
	}
	line := Line{
		Strategy:    rec.Strategy.String(),
		Key:         rec.Key,
		Word:        rec.Word,
		Aliases:     aliases,
		Definition:  rec.Definition,
		Folder:      rec.Folder,
		Destination: destination,
	}
	if rec.File != nil {
		p := rec.File.Path
		line.File = &p
		line.FileName = rec.File.Name
	}
	return line
}
