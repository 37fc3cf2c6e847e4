package tree

// AttrID is the attribute key under which a node's identifier is rendered.
const AttrID = "id"

// Node is the capability set the traversal and printing helpers rely on.
type Node interface {
	// ID returns the opaque identifier of the node.
	ID() string

	// Children returns the ordered child nodes. It may be empty.
	Children() []Node

	// NextSibling returns the following child of the same parent, or nil
	// for the last child and for the root.
	NextSibling() Node

	// ExportAttrs returns the attributes rendered when no filter is given.
	ExportAttrs() map[string]any

	// Attr looks up a single attribute by name.
	Attr(name string) (any, bool)
}

// firstChild returns the head of n's sibling chain, or nil for a leaf.
func firstChild(n Node) Node {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}
