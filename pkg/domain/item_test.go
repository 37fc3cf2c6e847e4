package domain

import (
	"testing"

	"github.com/aretw0/todotree/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_SiblingChainMatchesChildren(t *testing.T) {
	root := NewItem("root", "Inbox")
	kids := []*Item{NewItem("a", "A"), NewItem("b", "B"), NewItem("c", "C")}
	for _, k := range kids {
		require.NoError(t, root.AddChild(k))
	}

	children := root.Children()
	require.Len(t, children, 3)

	var chain []tree.Node
	for n := children[0]; n != nil; n = n.NextSibling() {
		chain = append(chain, n)
	}
	assert.Equal(t, children, chain)

	assert.Nil(t, root.NextSibling())
	assert.Same(t, root, kids[1].Parent())
	assert.Equal(t, kids, root.Items())
}

func TestItem_AddChildErrors(t *testing.T) {
	root := NewItem("root", "")
	child := NewItem("a", "")
	require.NoError(t, root.AddChild(child))

	assert.ErrorIs(t, root.AddChild(child), ErrAlreadyAttached)
	assert.ErrorIs(t, root.AddChild(root), ErrAlreadyAttached)
	assert.ErrorIs(t, root.AddChild(NewItem("", "")), ErrMissingID)
	assert.ErrorIs(t, root.AddChild(nil), ErrMissingID)
}

func TestItem_Attributes(t *testing.T) {
	root := NewItem("root", "Inbox")
	item := NewItem("a", "Groceries")
	require.NoError(t, root.AddChild(item))

	assert.Equal(t, map[string]any{"name": "Groceries", "completed": false}, item.ExportAttrs())

	item.Note = "before friday"
	item.Tags = []string{"home"}
	item.Completed = true
	assert.Equal(t, map[string]any{
		"name":      "Groceries",
		"completed": true,
		"note":      "before friday",
		"tags":      []string{"home"},
	}, item.ExportAttrs())

	v, ok := item.Attr("parent")
	assert.True(t, ok)
	assert.Equal(t, "root", v)

	_, ok = root.Attr("parent")
	assert.False(t, ok)

	_, ok = item.Attr("missing_attr")
	assert.False(t, ok)

	v, ok = item.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestItem_Prettify(t *testing.T) {
	root := NewItem("root", "Inbox")
	child := NewItem("a", "Milk")
	child.Completed = true
	require.NoError(t, root.AddChild(child))

	got := tree.Prettify(root, []string{"name", "completed", "missing_attr"})
	assert.Equal(t, "{id: \"root\", name: \"Inbox\", completed: false}\n  {id: \"a\", name: \"Milk\", completed: true}", got)
}
