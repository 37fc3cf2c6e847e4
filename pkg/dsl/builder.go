package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/todotree/pkg/domain"
	"github.com/aretw0/todotree/pkg/tree"
)

var (
	// ErrNoRoot is returned when every added item names a parent.
	ErrNoRoot = errors.New("outline has no root item")
	// ErrMultipleRoots is returned when more than one item has no parent.
	ErrMultipleRoots = errors.New("outline has more than one root item")
	// ErrUnknownParent is returned when an item is placed under an ID that was never added.
	ErrUnknownParent = errors.New("unknown parent item")
	// ErrDetached is returned when some items cannot be reached from the root.
	ErrDetached = errors.New("items not reachable from root")
	// ErrReparented is returned when an item is placed under two different parents.
	ErrReparented = errors.New("item placed under two parents")
)

// Builder manages the outline construction.
type Builder struct {
	nodes map[string]*NodeBuilder
	order []string
	errs  []error
}

// New creates a new outline builder.
func New() *Builder {
	return &Builder{
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add creates a new item in the outline.
// If the item already exists, it returns the existing builder.
// Children keep the order in which they were added.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		item:    domain.NewItem(id, ""),
		builder: b,
	}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

// Has reports whether an item with the given ID was added.
func (b *Builder) Has(id string) bool {
	_, ok := b.nodes[id]
	return ok
}

// Len returns the number of items added so far.
func (b *Builder) Len() int {
	return len(b.order)
}

// Build wires the items into a tree and returns its root.
// The builder should not be reused afterwards.
func (b *Builder) Build() (*domain.Item, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	var root *domain.Item
	for _, id := range b.order {
		if id == "" {
			return nil, domain.ErrMissingID
		}
		nb := b.nodes[id]
		if nb.parentID != "" {
			continue
		}
		if root != nil {
			return nil, fmt.Errorf("%w: %q and %q", ErrMultipleRoots, root.ID(), id)
		}
		root = nb.item
	}
	if root == nil {
		return nil, ErrNoRoot
	}

	for _, id := range b.order {
		nb := b.nodes[id]
		if nb.parentID == "" {
			continue
		}
		parent, ok := b.nodes[nb.parentID]
		if !ok {
			return nil, fmt.Errorf("%w: %q (parent of %q)", ErrUnknownParent, nb.parentID, id)
		}
		if err := parent.item.AddChild(nb.item); err != nil {
			return nil, fmt.Errorf("failed to attach %q under %q: %w", id, nb.parentID, err)
		}
	}

	if n := tree.Count(root); n != len(b.order) {
		return nil, fmt.Errorf("%w: %d of %d", ErrDetached, len(b.order)-n, len(b.order))
	}
	return root, nil
}
