package todotree

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/todotree/internal/logging"
	"github.com/aretw0/todotree/internal/presentation/graph"
	"github.com/aretw0/todotree/pkg/adapters/file"
	"github.com/aretw0/todotree/pkg/convert"
	"github.com/aretw0/todotree/pkg/domain"
	"github.com/aretw0/todotree/pkg/ports"
	"github.com/aretw0/todotree/pkg/tree"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// Outline is the high-level entry point for the todotree library.
// It wraps a root item and offers the common inspections.
type Outline struct {
	root   *domain.Item
	logger *slog.Logger
	Name   string
}

// Option defines a functional option for configuring an Outline.
type Option func(*Outline)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Outline) {
		o.logger = logger
	}
}

// WithName overrides the outline name (default: file name without extension).
func WithName(name string) Option {
	return func(o *Outline) {
		o.Name = name
	}
}

// Open loads an outline file (YAML, or JSON by extension).
func Open(path string, opts ...Option) (*Outline, error) {
	return Load(file.NewLoader(path), append([]Option{WithName(convert.BaseNameNoExt(path))}, opts...)...)
}

// Load obtains an outline from any OutlineLoader.
func Load(loader ports.OutlineLoader, opts ...Option) (*Outline, error) {
	root, err := loader.LoadOutline()
	if err != nil {
		return nil, err
	}
	o := New(root, opts...)
	o.logger.Debug("outline loaded", "name", o.Name, "items", tree.Count(root))
	return o, nil
}

// New wraps an already built tree.
func New(root *domain.Item, opts ...Option) *Outline {
	o := &Outline{root: root}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	if o.Name == "" && root != nil {
		o.Name = root.ID()
	}
	return o
}

// Root returns the root item.
func (o *Outline) Root() *domain.Item {
	return o.root
}

// Len returns the number of items in the outline.
func (o *Outline) Len() int {
	return tree.Count(o.root)
}

// Order returns the item IDs in breadth-first order.
func (o *Outline) Order() []string {
	nodes := tree.BreadthFirst(o.root)
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	return ids
}

// Prettify renders the outline, projecting attrs (or every exported
// attribute when attrs is empty).
func (o *Outline) Prettify(attrs ...string) string {
	return tree.Prettify(o.root, attrs)
}

// Fprint writes the rendering to w.
func (o *Outline) Fprint(w io.Writer, attrs ...string) error {
	if err := tree.Fprint(w, o.root, attrs); err != nil {
		return fmt.Errorf("failed to print outline %s: %w", o.Name, err)
	}
	return nil
}

// Print writes the rendering to standard output.
func (o *Outline) Print(attrs ...string) {
	_ = o.Fprint(os.Stdout, attrs...)
}

// Mermaid returns a flowchart of the outline with completed items styled.
// A non-empty current highlights that item.
func (o *Outline) Mermaid(current string) string {
	return graph.GenerateMermaid(o.root, &graph.GraphOverlay{
		Completed:   graph.CompletedIDs(o.root),
		CurrentNode: current,
	})
}
