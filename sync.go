package todotree

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/todotree/internal/logging"
	"github.com/aretw0/todotree/pkg/domain"
	"github.com/aretw0/todotree/pkg/dryrun"
	"github.com/aretw0/todotree/pkg/tree"
)

// Titles printed by the stand-ins used in Simulate.
const (
	TitleCount    = "count items"
	TitleCreate   = "create item"
	TitleComplete = "complete item"
)

// SyncReport summarises a simulated sync.
type SyncReport struct {
	// Items is the number of items in the outline, root included.
	Items int
	// Created maps local item IDs to the synthetic remote IDs handed out.
	// The root maps to itself; it is assumed to exist remotely.
	Created map[string]string
	// Order lists local IDs in the order they were created.
	Order []string
	// Completed lists the remote IDs that were marked done.
	Completed []string
}

// SyncOption configures Simulate.
type SyncOption func(*syncConfig)

type syncConfig struct {
	prefix  string
	standIn []dryrun.Option
	logger  *slog.Logger
}

// WithPrefix sets the prefix of the synthetic remote IDs (default "NEW").
func WithPrefix(prefix string) SyncOption {
	return func(c *syncConfig) {
		c.prefix = prefix
	}
}

// WithStandInOptions passes options (output, metrics...) to every stand-in.
func WithStandInOptions(opts ...dryrun.Option) SyncOption {
	return func(c *syncConfig) {
		c.standIn = append(c.standIn, opts...)
	}
}

// WithSyncLogger sets the logger used for progress traces.
func WithSyncLogger(logger *slog.Logger) SyncOption {
	return func(c *syncConfig) {
		c.logger = logger
	}
}

// Simulate prints the calls mirroring root to a remote service would make.
// Items are created in breadth-first order so that every parent has a remote
// ID before its children are created.
func Simulate(ctx context.Context, root *domain.Item, opts ...SyncOption) (*SyncReport, error) {
	if root == nil {
		return nil, fmt.Errorf("simulate: %w", domain.ErrMissingID)
	}
	cfg := syncConfig{prefix: dryrun.DefaultPrefix, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	countItems := dryrun.NewWrapper(TitleCount, func(args ...any) (any, error) {
		return tree.Count(root), nil
	}, cfg.standIn...)
	create := dryrun.NewCounter(TitleCreate, cfg.prefix, cfg.standIn...)
	complete := dryrun.NewPrinter(TitleComplete, cfg.standIn...)

	count, err := countItems.Call(root.ID())
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}
	report := &SyncReport{
		Items:   count.(int),
		Created: map[string]string{root.ID(): root.ID()},
	}

	var walkErr error
	tree.Walk(root, func(n tree.Node) bool {
		if err := ctx.Err(); err != nil {
			walkErr = err
			return false
		}
		item := n.(*domain.Item)
		remoteID := report.Created[item.ID()]
		if item.Parent() != nil {
			args := []any{item.Name, dryrun.KV{Key: "parent", Value: report.Created[item.Parent().ID()]}}
			if item.Note != "" {
				args = append(args, dryrun.KV{Key: "note", Value: item.Note})
			}
			res, err := create.Call(args...)
			if err != nil {
				walkErr = err
				return false
			}
			remoteID = res.ID
			report.Created[item.ID()] = remoteID
			report.Order = append(report.Order, item.ID())
			cfg.logger.Debug("item created", "id", item.ID(), "remote_id", remoteID)
		}
		if item.Completed {
			if err := complete.Call(remoteID); err != nil {
				walkErr = err
				return false
			}
			report.Completed = append(report.Completed, remoteID)
		}
		return true
	})
	if walkErr != nil {
		return report, fmt.Errorf("simulate: %w", walkErr)
	}

	cfg.logger.Info("sync simulated", "items", report.Items, "created", create.Calls(), "completed", len(report.Completed))
	return report, nil
}
