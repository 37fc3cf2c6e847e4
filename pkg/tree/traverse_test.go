package tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreadthFirst(t *testing.T) {
	tests := []struct {
		name string
		root *fakeNode
		want []string
	}{
		{
			name: "Single Node",
			root: node("R"),
			want: []string{"R"},
		},
		{
			name: "Two Levels",
			root: node("R",
				node("A", node("C"), node("D")),
				node("B"),
			),
			want: []string{"R", "A", "B", "C", "D"},
		},
		{
			name: "Leaf Between Inner Nodes",
			root: node("R",
				node("A", node("C", node("E")), node("D", node("F"), node("G"))),
				node("B", node("H")),
			),
			want: []string{"R", "A", "B", "C", "D", "H", "E", "F", "G"},
		},
		{
			name: "Deep Chain",
			root: node("1", node("2", node("3", node("4")))),
			want: []string{"1", "2", "3", "4"},
		},
		{
			name: "Empty Children In The Middle Of A Level",
			root: node("R",
				node("A"),
				node("B", node("D")),
				node("C"),
			),
			want: []string{"R", "A", "B", "C", "D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BreadthFirst(tt.root)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestBreadthFirst_ReturnsSameNodes(t *testing.T) {
	child := node("A")
	root := node("R", child)

	got := BreadthFirst(root)
	require.Len(t, got, 2)
	assert.Same(t, root, got[0])
	assert.Same(t, child, got[1])
}

func TestBreadthFirst_NilRoot(t *testing.T) {
	assert.Empty(t, BreadthFirst(nil))

	var typed *fakeNode
	assert.Empty(t, BreadthFirst(typed))
}

func TestBreadthFirst_TypedNilSibling(t *testing.T) {
	a, b := node("A"), node("B")
	b.typedNil = true
	root := node("R", a, b)

	assert.Equal(t, []string{"R", "A", "B"}, ids(BreadthFirst(root)))
}

// wide builds a tree where node i has (i % fanout) children, numbered in
// level order, and records each node's depth.
func wide(total, fanout int) (*fakeNode, map[string]int) {
	depth := map[string]int{"0": 0}
	root := node("0")
	level := []*fakeNode{root}
	next := 1
	for next < total && len(level) > 0 {
		var nextLevel []*fakeNode
		for i, parent := range level {
			var kids []*fakeNode
			for k := 0; k < (i+next)%fanout+1 && next < total; k++ {
				kid := node(fmt.Sprint(next))
				depth[kid.id] = depth[parent.id] + 1
				kids = append(kids, kid)
				next++
			}
			for j, k := range kids {
				k.parent = parent
				k.index = j
			}
			parent.children = kids
			nextLevel = append(nextLevel, kids...)
		}
		level = nextLevel
	}
	return root, depth
}

func TestBreadthFirst_VisitsEveryNodeOnceByLevel(t *testing.T) {
	root, depth := wide(200, 4)

	got := BreadthFirst(root)
	require.Len(t, got, len(depth))

	seen := make(map[string]bool)
	last := 0
	for i, n := range got {
		assert.Equal(t, fmt.Sprint(i), n.ID(), "nodes are numbered in level order")

		assert.False(t, seen[n.ID()], "node %s visited twice", n.ID())
		seen[n.ID()] = true

		d := depth[n.ID()]
		assert.GreaterOrEqual(t, d, last, "node %s visited after a deeper level", n.ID())
		last = d
	}
	assert.Equal(t, len(depth), Count(root))
}

func TestWalk_StopsEarly(t *testing.T) {
	root := node("R",
		node("A", node("C"), node("D")),
		node("B"),
	)

	var visited []string
	Walk(root, func(n Node) bool {
		visited = append(visited, n.ID())
		return n.ID() != "B"
	})
	assert.Equal(t, []string{"R", "A", "B"}, visited)

	visited = nil
	Walk(root, func(n Node) bool {
		visited = append(visited, n.ID())
		return false
	})
	assert.Equal(t, []string{"R"}, visited)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count(nil))
	assert.Equal(t, 1, Count(node("R")))
	assert.Equal(t, 5, Count(node("R", node("A", node("C"), node("D")), node("B"))))
}

func TestIsNil(t *testing.T) {
	var typed *fakeNode
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(typed))
	assert.False(t, IsNil(node("R")))
}
