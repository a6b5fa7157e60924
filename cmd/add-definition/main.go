// Command add-definition adds one definition to a notes workspace. It opens
// an add-definition form for the given document, applies the flag values as
// form edits and submits. Records are written as JSON lines to the
// configured sink; notices go to stderr.
//
// Flags:
//
//	--doc         document being viewed (workspace-relative, optional)
//	--word        headword
//	--aliases     comma-separated aliases
//	--definition  definition text
//	--type        storage strategy override: consolidated or atomic
//	--file        consolidated file override
//	--folder      atomic folder override
//
// Exit codes: 0 = definition dispatched, 1 = refused or error.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/heartmarshall/notedefs/internal/app"
)

func main() {
	var req app.Request
	flag.StringVar(&req.DocumentPath, "doc", "", "document being viewed")
	flag.StringVar(&req.Word, "word", "", "headword")
	flag.StringVar(&req.Aliases, "aliases", "", "comma-separated aliases")
	flag.StringVar(&req.Definition, "definition", "", "definition text")
	flag.StringVar(&req.Strategy, "type", "", "storage strategy override: consolidated or atomic")
	flag.StringVar(&req.File, "file", "", "consolidated definition file override")
	flag.StringVar(&req.Folder, "folder", "", "atomic definition folder override")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx, req); err != nil {
		slog.Error("add definition", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
