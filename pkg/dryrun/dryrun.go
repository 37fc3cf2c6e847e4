package dryrun

import (
	"fmt"
	"io"
	"strings"
)

// KV is a keyword argument. KV values passed among the arguments of a call
// are printed after the positional ones.
type KV struct {
	Key   string
	Value any
}

func (kv KV) String() string {
	return fmt.Sprintf("(%s, %v)", kv.Key, kv.Value)
}

// Func is the signature of the operations a Wrapper delegates to.
type Func func(args ...any) (any, error)

// Result is the placeholder returned by Counter in place of a created object.
type Result struct {
	ID string
}

func (r Result) String() string {
	return fmt.Sprintf("{id: %q}", r.ID)
}

// DefaultPrefix is used by NewCounter when no prefix is given.
const DefaultPrefix = "NEW"

// Wrapper prints each call and then performs it.
type Wrapper struct {
	title string
	fn    Func
	cfg   config
}

// NewWrapper returns a Wrapper delegating to fn.
func NewWrapper(title string, fn Func, opts ...Option) *Wrapper {
	return &Wrapper{title: title, fn: fn, cfg: newConfig(opts)}
}

// Call prints the call block and returns whatever fn returns.
func (w *Wrapper) Call(args ...any) (any, error) {
	w.cfg.record(w.title, args)
	if err := writeCall(w.cfg.out, w.title, " ", args); err != nil {
		return nil, err
	}
	return w.fn(args...)
}

// Printer prints each call without performing anything.
type Printer struct {
	title string
	cfg   config
}

// NewPrinter returns a Printer labelled with title.
func NewPrinter(title string, opts ...Option) *Printer {
	return &Printer{title: title, cfg: newConfig(opts)}
}

// Call prints the call block.
func (p *Printer) Call(args ...any) error {
	p.cfg.record(p.title, args)
	return writeCall(p.cfg.out, p.title, "  ", args)
}

// Counter prints each call and returns a fresh synthetic Result.
type Counter struct {
	title  string
	prefix string
	next   int
	cfg    config
}

// NewCounter returns a Counter whose results are numbered from 0.
// An empty prefix means DefaultPrefix.
func NewCounter(title, prefix string, opts ...Option) *Counter {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Counter{title: title, prefix: prefix, cfg: newConfig(opts)}
}

// Call prints the title with the synthetic result, then the arguments, and
// returns the result. The counter advances even if printing fails.
func (c *Counter) Call(args ...any) (Result, error) {
	res := Result{ID: fmt.Sprintf("%s %d", c.prefix, c.next)}
	c.next++
	c.cfg.record(c.title, args)
	err := writeCall(c.cfg.out, fmt.Sprintf("%s %s", c.title, res), "  ", args)
	return res, err
}

// Calls returns how many calls the Counter has answered.
func (c *Counter) Calls() int {
	return c.next
}

// writeCall prints title, then positional and keyword arguments, one per
// line prefixed with sep, followed by a blank line.
func writeCall(w io.Writer, title, sep string, args []any) error {
	var sb strings.Builder
	sb.WriteString(title)
	var kwargs []KV
	for _, a := range args {
		if kv, ok := a.(KV); ok {
			kwargs = append(kwargs, kv)
			continue
		}
		fmt.Fprintf(&sb, "\n%s%v", sep, a)
	}
	for _, kv := range kwargs {
		fmt.Fprintf(&sb, "\n%s%s", sep, kv)
	}
	sb.WriteString("\n\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
