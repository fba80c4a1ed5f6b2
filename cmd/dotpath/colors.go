package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// useColor resolves the --color flag ("auto", "always", "never") for w.
func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type palette struct {
	path  *color.Color
	value *color.Color
	err   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:  color.New(color.FgCyan),
		value: color.New(color.FgYellow),
		err:   color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.path, p.value, p.err} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (a *app) printError(err error) {
	p := newPalette(useColor(a.errOut, a.color))
	_, _ = fmt.Fprintf(a.errOut, "%s %v\n", p.err.Sprint("error:"), err)
}
