package tree

// fakeNode is a minimal Node used to exercise the package without the
// domain types.
type fakeNode struct {
	id       string
	attrs    map[string]any
	parent   *fakeNode
	index    int
	children []*fakeNode

	// typedNil makes NextSibling return a nil *fakeNode wrapped in a Node.
	typedNil bool
}

func node(id string, children ...*fakeNode) *fakeNode {
	return withAttrs(id, nil, children...)
}

func withAttrs(id string, attrs map[string]any, children ...*fakeNode) *fakeNode {
	n := &fakeNode{id: id, attrs: attrs}
	for i, c := range children {
		c.parent = n
		c.index = i
	}
	n.children = children
	return n
}

func (n *fakeNode) ID() string { return n.id }

func (n *fakeNode) Children() []Node {
	nodes := make([]Node, len(n.children))
	for i, c := range n.children {
		nodes[i] = c
	}
	return nodes
}

func (n *fakeNode) NextSibling() Node {
	if n.parent == nil || n.index+1 >= len(n.parent.children) {
		if n.typedNil {
			var none *fakeNode
			return none
		}
		return nil
	}
	return n.parent.children[n.index+1]
}

func (n *fakeNode) ExportAttrs() map[string]any { return n.attrs }

func (n *fakeNode) Attr(name string) (any, bool) {
	if name == AttrID {
		return n.id, true
	}
	v, ok := n.attrs[name]
	return v, ok
}

func ids(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	return out
}
