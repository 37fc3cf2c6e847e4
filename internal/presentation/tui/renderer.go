package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/todotree/pkg/tree"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// With styled=false it uses the plain "notty" style, suitable for pipes.
func NewRenderer(styled bool) (func(string) (string, error), error) {
	opt := glamour.WithStandardStyle("notty")
	if styled {
		opt = glamour.WithAutoStyle() // Automatically detect light/dark background
	}
	r, err := glamour.NewTermRenderer(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render, nil
}

// Outline converts a tree into a nested Markdown checklist, depth first in
// child order.
func Outline(root tree.Node) string {
	var sb strings.Builder
	writeOutline(&sb, root, 0)
	return sb.String()
}

func writeOutline(sb *strings.Builder, n tree.Node, depth int) {
	if tree.IsNil(n) {
		return
	}
	box := "[ ]"
	if done, ok := n.Attr("completed"); ok && done == true {
		box = "[x]"
	}
	text := n.ID()
	if v, ok := n.Attr("name"); ok {
		if name, ok := v.(string); ok && name != "" {
			text = name
		}
	}
	fmt.Fprintf(sb, "%s- %s %s\n", strings.Repeat("  ", depth), box, text)
	for _, child := range n.Children() {
		writeOutline(sb, child, depth+1)
	}
}

// RenderOutline renders the checklist of root through glamour.
func RenderOutline(root tree.Node, styled bool) (string, error) {
	render, err := NewRenderer(styled)
	if err != nil {
		return "", err
	}
	return render(Outline(root))
}
