package tree

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// indent is prepended to every line of a child subtree.
const indent = "  "

// attribute is one entry of a node's rendered projection.
type attribute struct {
	key   string
	value any
}

// Prettify renders n and its descendants, one node per line, each child
// subtree indented two spaces deeper than its parent.
//
// The id is always rendered first. With a non-empty attrs filter only the
// listed attributes the node actually has are added, in filter order; with an
// empty filter every exported attribute is added, sorted by name.
// A nil node renders as the empty string.
func Prettify(n Node, attrs []string) string {
	if IsNil(n) {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(formatAttributes(project(n, attrs)))
	for _, child := range n.Children() {
		sub := Prettify(child, attrs)
		if sub == "" {
			continue
		}
		for _, line := range strings.Split(sub, "\n") {
			sb.WriteString("\n")
			sb.WriteString(indent)
			sb.WriteString(line)
		}
	}
	return sb.String()
}

// Fprint writes the rendering of n followed by a newline to w.
func Fprint(w io.Writer, n Node, attrs []string) error {
	_, err := fmt.Fprintln(w, Prettify(n, attrs))
	return err
}

// Print writes the rendering of n to standard output.
func Print(n Node, attrs []string) {
	_ = Fprint(os.Stdout, n, attrs)
}

func project(n Node, attrs []string) []attribute {
	projection := []attribute{{key: AttrID, value: n.ID()}}
	if len(attrs) > 0 {
		for _, name := range attrs {
			if v, ok := n.Attr(name); ok {
				projection = setAttribute(projection, name, v)
			}
		}
		return projection
	}
	exported := n.ExportAttrs()
	keys := make([]string, 0, len(exported))
	for k := range exported {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		projection = setAttribute(projection, k, exported[k])
	}
	return projection
}

// setAttribute replaces the value of an existing key in place, keeping its
// position, or appends a new entry.
func setAttribute(projection []attribute, key string, value any) []attribute {
	for i := range projection {
		if projection[i].key == key {
			projection[i].value = value
			return projection
		}
	}
	return append(projection, attribute{key: key, value: value})
}

func formatAttributes(projection []attribute) string {
	parts := make([]string, 0, len(projection))
	for _, a := range projection {
		parts = append(parts, a.key+": "+formatValue(a.value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// lineBreaks escapes the line breaks a value's default format may contain,
// so a node always renders on a single line.
var lineBreaks = strings.NewReplacer("\r", `\r`, "\n", `\n`)

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(val)
	case []string:
		return fmt.Sprintf("%q", val)
	default:
		return lineBreaks.Replace(fmt.Sprint(val))
	}
}
