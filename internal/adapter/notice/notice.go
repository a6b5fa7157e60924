// Package notice shows transient user notices on a terminal stream.
package notice

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Notifier prints each notice as one line and records it in the log.
type Notifier struct {
	log *slog.Logger

	mu  sync.Mutex
	out io.Writer
}

// New creates a Notifier writing to out.
func New(logger *slog.Logger, out io.Writer) *Notifier {
	return &Notifier{
		log: logger.With("adapter", "notice"),
		out: out,
	}
}

// Notify shows message to the user.
func (n *Notifier) Notify(message string) {
	n.log.Info("notice", slog.String("message", message))

	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := fmt.Fprintln(n.out, message); err != nil {
		n.log.Warn("write notice", slog.String("error", err.Error()))
	}
}
