package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/todotree"
	"github.com/aretw0/todotree/internal/logging"
	"golang.org/x/term"
)

// CreateLogger configures the application logger from the --log-level flag.
// "off" disables logging entirely.
func CreateLogger(level string) (*slog.Logger, error) {
	if level == "off" {
		return logging.NewNop(), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

// OpenOutline loads the outline at path, logging through logger.
func OpenOutline(path string, logger *slog.Logger) (*todotree.Outline, error) {
	if path == "" {
		return nil, fmt.Errorf("no outline file given")
	}
	outline, err := todotree.Open(path, todotree.WithLogger(logger))
	if err != nil {
		logger.Error("failed to open outline", "path", path, "error", err)
		return nil, err
	}
	return outline, nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// IsTerminalWriter reports whether w is a file attached to a terminal.
// Any other writer (buffers, pipes wrapped in a writer) is not.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && IsTerminal(f)
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
