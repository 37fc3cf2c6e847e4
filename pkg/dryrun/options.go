package dryrun

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/todotree/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a stand-in.
type Option func(*config)

type config struct {
	out    io.Writer
	logger *slog.Logger
	calls  *prometheus.CounterVec
}

func newConfig(opts []Option) config {
	cfg := config{
		out:    os.Stdout,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOutput redirects the printed call blocks (default: standard output).
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}

// WithLogger configures the structured logger used for debug traces.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics counts calls per title in todotree_dryrun_calls_total on reg.
// Stand-ins sharing a registerer share the counter.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *config) {
		c.calls = callsCounter(reg)
	}
}

func callsCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	calls := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todotree_dryrun_calls_total",
			Help: "Total number of simulated calls",
		},
		[]string{"title"},
	)
	if err := reg.Register(calls); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		return nil
	}
	return calls
}

func (c config) record(title string, args []any) {
	if c.calls != nil {
		c.calls.WithLabelValues(title).Inc()
	}
	c.logger.Debug("dry-run call", "title", title, "args", len(args))
}
