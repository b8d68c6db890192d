package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner to w.
// Colours degrade to plain text when w is not a terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"       _                _         _     _", "#818cf8"},
		{"  _ __| |__ _ __ ___ __| |_  ___ | |___| |___ _ _", "#a78bfa"},
		{" | '_ \\ / _` / _/ -_) _| ' \\/ _ \\| / _` / -_) '_|", "#c084fc"},
		{" | .__/_\\__,_\\__\\___\\__|_||_\\___/|_\\__,_\\___|_|", "#e879f9"},
		{" |_|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  "+version).Faint())
	}
	fmt.Fprintln(w)
}
