package tree

import (
	"reflect"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Walk visits root and its descendants in level order, stopping as soon as
// visit returns false.
//
// Navigation only uses the first child of a node and NextSibling. Nodes with
// children are queued as entry points; once a sibling chain is exhausted the
// walk resumes at the first child of the oldest queued node.
func Walk(root Node, visit func(Node) bool) {
	if IsNil(root) || !visit(root) {
		return
	}
	entries := linkedlistqueue.New()
	node := firstChild(root)
	for !IsNil(node) {
		if !visit(node) {
			return
		}
		if len(node.Children()) > 0 {
			entries.Enqueue(node)
		}
		node = node.NextSibling()
		if IsNil(node) {
			if next, ok := entries.Dequeue(); ok {
				node = firstChild(next.(Node))
			}
		}
	}
}

// BreadthFirst returns every node reachable from root exactly once, root
// first, then each depth level left to right. The slice holds the nodes
// themselves, not copies.
func BreadthFirst(root Node) []Node {
	var order []Node
	Walk(root, func(n Node) bool {
		order = append(order, n)
		return true
	})
	return order
}

// Count returns the number of nodes reachable from root.
func Count(root Node) int {
	count := 0
	Walk(root, func(Node) bool {
		count++
		return true
	})
	return count
}

// IsNil reports whether n is nil, including a typed nil pointer wrapped in a
// Node.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		return v.IsNil()
	}
	return false
}
