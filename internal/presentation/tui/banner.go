package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the todotree banner to w, coloured when the terminal
// supports it.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{" _            _       _", "#818cf8"},
		{"| |_ ___   __| | ___ | |_ _ __ ___  ___", "#a78bfa"},
		{"| __/ _ \\ / _` |/ _ \\| __| '__/ _ \\/ _ \\", "#c084fc"},
		{"| || (_) | (_| | (_) | |_| | |  __/  __/", "#e879f9"},
		{" \\__\\___/ \\__,_|\\___/ \\__|_|  \\___|\\___|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
