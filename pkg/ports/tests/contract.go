package tests

import (
	"testing"

	"github.com/aretw0/todotree/pkg/ports"
	"github.com/aretw0/todotree/pkg/tree"
)

// OutlineLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.OutlineLoader.
// wantOrder is the expected breadth-first ID order of the loaded outline.
func OutlineLoaderContractTest(t *testing.T, loader ports.OutlineLoader, wantOrder []string) {
	t.Helper()

	// 1. Load (Success)
	t.Run("LoadOutline_Success", func(t *testing.T) {
		root, err := loader.LoadOutline()
		if err != nil {
			t.Fatalf("unexpected error loading outline: %v", err)
		}
		if root == nil {
			t.Fatal("expected a root item, got nil")
		}
		if root.Parent() != nil {
			t.Errorf("root %s has a parent", root.ID())
		}

		nodes := tree.BreadthFirst(root)
		if len(nodes) != len(wantOrder) {
			t.Fatalf("expected %d items, got %d", len(wantOrder), len(nodes))
		}
		for i, n := range nodes {
			if n.ID() != wantOrder[i] {
				t.Errorf("order mismatch at %d. got %q, want %q", i, n.ID(), wantOrder[i])
			}
		}
	})

	// 2. Sibling chains agree with children
	t.Run("SiblingChains", func(t *testing.T) {
		root, err := loader.LoadOutline()
		if err != nil {
			t.Fatalf("unexpected error loading outline: %v", err)
		}
		tree.Walk(root, func(n tree.Node) bool {
			children := n.Children()
			var s tree.Node
			if len(children) > 0 {
				s = children[0]
			}
			for i, c := range children {
				if s == nil || s.ID() != c.ID() {
					t.Errorf("sibling chain of %s diverges at %d", n.ID(), i)
					return false
				}
				s = s.NextSibling()
			}
			if s != nil {
				t.Errorf("sibling chain of %s is longer than its children", n.ID())
			}
			return true
		})
	})
}
