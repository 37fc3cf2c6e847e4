package domain

import "github.com/aretw0/todotree/pkg/tree"

// Attribute names understood by Item.Attr and emitted by Item.ExportAttrs.
const (
	AttrName      = "name"
	AttrNote      = "note"
	AttrCompleted = "completed"
	AttrTags      = "tags"
	AttrParent    = "parent"
)

// Item is a single entry of a todo outline.
// Children are owned by their parent; the parent link and sibling position
// are maintained by AddChild so that Children and NextSibling always agree.
type Item struct {
	Name      string
	Note      string
	Completed bool
	Tags      []string

	id       string
	parent   *Item
	index    int
	children []*Item
}

var _ tree.Node = (*Item)(nil)

// NewItem creates a detached item.
func NewItem(id, name string) *Item {
	return &Item{id: id, Name: name}
}

// AddChild appends child as the last child of it.
func (it *Item) AddChild(child *Item) error {
	if child == nil || child.id == "" {
		return ErrMissingID
	}
	if child.parent != nil || child == it {
		return ErrAlreadyAttached
	}
	child.parent = it
	child.index = len(it.children)
	it.children = append(it.children, child)
	return nil
}

// Parent returns the enclosing item, or nil for a root.
func (it *Item) Parent() *Item {
	return it.parent
}

// Items returns the children with their concrete type.
func (it *Item) Items() []*Item {
	return it.children
}

// ID is part of tree.Node.
func (it *Item) ID() string {
	return it.id
}

// Children is part of tree.Node.
func (it *Item) Children() []tree.Node {
	if len(it.children) == 0 {
		return nil
	}
	nodes := make([]tree.Node, len(it.children))
	for i, c := range it.children {
		nodes[i] = c
	}
	return nodes
}

// NextSibling is part of tree.Node.
func (it *Item) NextSibling() tree.Node {
	if it.parent == nil || it.index+1 >= len(it.parent.children) {
		return nil // untyped nil, callers compare against nil
	}
	return it.parent.children[it.index+1]
}

// ExportAttrs is part of tree.Node. Note and tags are only exported when set.
func (it *Item) ExportAttrs() map[string]any {
	attrs := map[string]any{
		AttrName:      it.Name,
		AttrCompleted: it.Completed,
	}
	if it.Note != "" {
		attrs[AttrNote] = it.Note
	}
	if len(it.Tags) > 0 {
		attrs[AttrTags] = it.Tags
	}
	return attrs
}

// Attr is part of tree.Node.
func (it *Item) Attr(name string) (any, bool) {
	switch name {
	case tree.AttrID:
		return it.id, true
	case AttrName:
		return it.Name, true
	case AttrNote:
		return it.Note, true
	case AttrCompleted:
		return it.Completed, true
	case AttrTags:
		return it.Tags, true
	case AttrParent:
		if it.parent == nil {
			return nil, false
		}
		return it.parent.id, true
	}
	return nil, false
}
