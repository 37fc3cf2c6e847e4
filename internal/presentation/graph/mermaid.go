package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/todotree/pkg/tree"
)

// GraphOverlay contains state data to highlight on the diagram.
type GraphOverlay struct {
	// Completed lists item IDs to draw as done.
	Completed []string
	// CurrentNode is drawn as the item in focus.
	CurrentNode string
}

// GenerateMermaid produces a Mermaid flowchart (graph TD) of the tree rooted
// at root. Nodes are declared in breadth-first order; each one is followed by
// the edges to its children.
// - Root: ((Circle))
// - Inner item: [Rectangle]
// - Leaf: ([Stadium])
//
// Mermaid IDs are positional (n0 is the root, then n1, n2... in breadth-first
// order); item IDs only appear in labels. Overlay IDs that are not in the tree
// are ignored. If two items share an ID, the overlay applies to the first one.
func GenerateMermaid(root tree.Node, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	nodes := tree.BreadthFirst(root)
	ids := make([]string, len(nodes))
	byItem := make(map[string]string, len(nodes))
	for i, n := range nodes {
		ids[i] = fmt.Sprintf("n%d", i)
		if _, ok := byItem[n.ID()]; !ok {
			byItem[n.ID()] = ids[i]
		}
	}

	// Children are written in the order they were visited, so the k-th edge
	// always leads to node k+1.
	target := 1
	for i, node := range nodes {
		children := node.Children()

		opener, closer := "[", "]"
		switch {
		case i == 0:
			opener, closer = "((", "))"
		case len(children) == 0:
			opener, closer = "([", "])"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", ids[i], opener, label(node), closer))

		for range children {
			if target < len(ids) {
				sb.WriteString(fmt.Sprintf("    %s --> %s\n", ids[i], ids[target]))
			}
			target++
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef completed fill:#e8f5e9,stroke:#2e7d32,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.Completed {
			safeID, ok := byItem[id]
			if ok && !seen[safeID] {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s completed;\n", safeID))
			}
		}
		if safeID, ok := byItem[overlay.CurrentNode]; ok {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", safeID))
		}
	}

	return sb.String()
}

// CompletedIDs collects the IDs of nodes whose "completed" attribute is true,
// in breadth-first order.
func CompletedIDs(root tree.Node) []string {
	var ids []string
	tree.Walk(root, func(n tree.Node) bool {
		if done, ok := n.Attr("completed"); ok && done == true {
			ids = append(ids, n.ID())
		}
		return true
	})
	return ids
}

// label prefers the item name, falling back to the ID.
func label(n tree.Node) string {
	text := n.ID()
	if v, ok := n.Attr("name"); ok {
		if name, ok := v.(string); ok && name != "" {
			text = name
		}
	}
	// Double quotes would close the Mermaid label early
	return strings.ReplaceAll(text, "\"", "'")
}
