package dsl

import (
	"fmt"

	"github.com/aretw0/todotree/pkg/domain"
)

// NodeBuilder provides a fluent API for configuring an item.
type NodeBuilder struct {
	item     *domain.Item
	parentID string
	builder  *Builder
}

// Name sets the display name of the item.
func (n *NodeBuilder) Name(name string) *NodeBuilder {
	n.item.Name = name
	return n
}

// Note sets the free-text note of the item.
func (n *NodeBuilder) Note(note string) *NodeBuilder {
	n.item.Note = note
	return n
}

// Done marks the item as completed.
func (n *NodeBuilder) Done() *NodeBuilder {
	n.item.Completed = true
	return n
}

// Tag appends tags to the item.
func (n *NodeBuilder) Tag(tags ...string) *NodeBuilder {
	n.item.Tags = append(n.item.Tags, tags...)
	return n
}

// Under places the item below the item with the given ID.
// An item is placed once: naming a different parent later makes Build fail
// with ErrReparented.
func (n *NodeBuilder) Under(parentID string) *NodeBuilder {
	if n.parentID != "" && n.parentID != parentID {
		n.builder.errs = append(n.builder.errs,
			fmt.Errorf("%w: %q is under %q, not %q", ErrReparented, n.item.ID(), n.parentID, parentID))
		return n
	}
	n.parentID = parentID
	return n
}

// Child adds an item below this one and returns its builder. Calling Child
// with the ID of an item that already sits elsewhere makes Build fail with
// ErrReparented.
func (n *NodeBuilder) Child(id string) *NodeBuilder {
	return n.builder.Add(id).Under(n.item.ID())
}

// ID returns the identifier of the item being built.
func (n *NodeBuilder) ID() string {
	return n.item.ID()
}
