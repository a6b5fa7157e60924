package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/heartmarshall/notedefs/internal/adapter/notice"
	"github.com/heartmarshall/notedefs/internal/adapter/sink"
	"github.com/heartmarshall/notedefs/internal/adapter/vault"
	"github.com/heartmarshall/notedefs/internal/config"
	"github.com/heartmarshall/notedefs/internal/domain"
	"github.com/heartmarshall/notedefs/internal/service/intake"
)

// Request is one add-definition invocation: the document being viewed and
// the form values to apply before submitting. Empty picker and strategy
// fields keep the values the form opened with.
type Request struct {
	DocumentPath string
	Word         string
	Aliases      string
	Definition   string
	Strategy     string
	File         string
	Folder       string
}

// Run is the application entry point. It loads configuration, initializes
// the logger, opens the record sink and performs a single add-definition
// request. Notices go to stderr.
func Run(ctx context.Context, req Request) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting add-definition",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("workspace", cfg.Workspace.Root),
	)

	out, closeSink, err := openSink(cfg.Sink, logger)
	if err != nil {
		return err
	}
	defer closeSink()

	return AddDefinition(ctx, cfg, logger, req, out, os.Stderr)
}

// AddDefinition scans the workspace, opens a form session for the request's
// document, applies the request values as change events and submits. It
// returns nil once the record was dispatched and the refusal otherwise.
func AddDefinition(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	req Request,
	records io.Writer,
	notices io.Writer,
) error {
	v := vault.New(logger, cfg.Workspace, cfg.Definitions)
	if err := v.Scan(); err != nil {
		return err
	}

	svc := intake.NewService(
		logger,
		v,
		v,
		v,
		v,
		sink.New(logger, records),
		notice.New(logger, notices),
		cfg.Definitions,
	)

	session := svc.Open(ctx, intake.OpenInput{
		DocumentPath: req.DocumentPath,
		InitialWord:  req.Word,
	})
	applyRequest(session, req)

	if err := session.Submit(ctx); err != nil {
		return fmt.Errorf("add definition: %w", err)
	}
	return nil
}

func applyRequest(s *intake.Session, req Request) {
	s.SetAliases(req.Aliases)
	s.SetDefinition(req.Definition)
	if req.Strategy != "" {
		// Unknown names are kept so validation refuses them.
		s.SelectStrategy(domain.StorageStrategy(req.Strategy))
	}
	if req.File != "" {
		s.SelectFile(req.File)
	}
	if req.Folder != "" {
		s.SelectFolder(req.Folder)
	}
}

// openSink opens the configured record sink. An empty path writes to stdout.
// The returned close function logs a failed close.
func openSink(cfg config.SinkConfig, logger *slog.Logger) (io.Writer, func(), error) {
	if cfg.Path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open sink %s: %w", cfg.Path, err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			logger.Error("close sink",
				slog.String("path", cfg.Path),
				slog.String("error", err.Error()),
			)
		}
	}, nil
}
