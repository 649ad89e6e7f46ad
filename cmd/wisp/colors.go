package main

import "github.com/fatih/color"

// Named colors used by error and REPL output. fatih/color gives
// NO_COLOR and non-tty detection for free instead of hand-written ANSI
// escapes.
var (
	colorRed    = color.New(color.FgRed, color.Bold)
	colorYellow = color.New(color.FgYellow)
	colorGray   = color.New(color.FgHiBlack)
	colorCyan   = color.New(color.FgCyan)
)

// Colorize renders s in c when useColor is true, otherwise returns s
// unchanged.
func Colorize(s string, c *color.Color, useColor bool) string {
	if !useColor {
		return s
	}
	return c.Sprint(s)
}
