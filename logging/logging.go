// Package logging provides the one-method sink the agent writes rendered
// LLDPDUs and diagnostics to, with a colorized default implementation
// adapted from the teacher's pkg/logging color helpers.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Logger is the narrow interface the agent writes to (§6). Implementations
// must be safe to call from the agent's single goroutine; nothing here
// requires safety across goroutines since the agent never calls it from
// more than one.
type Logger interface {
	Log(line string)
}

// ColorLogger writes lines to an io.Writer (os.Stdout by default),
// colorizing ERROR/INFO prefixes the way the teacher's Error/Info helpers
// do, collapsed into the single sink the spec's Logger abstraction allows.
type ColorLogger struct {
	out           io.Writer
	colorsEnabled bool

	errorColor *color.Color
	infoColor  *color.Color
}

// NewColorLogger returns a ColorLogger writing to w. Colors are enabled
// unless disabled explicitly or the NO_COLOR environment variable is set,
// matching the teacher's InitColors convention.
func NewColorLogger(w io.Writer, enableColor bool) *ColorLogger {
	if os.Getenv("NO_COLOR") != "" {
		enableColor = false
	}
	return &ColorLogger{
		out:           w,
		colorsEnabled: enableColor,
		errorColor:    color.New(color.FgRed, color.Bold),
		infoColor:     color.New(color.FgBlue),
	}
}

// NewDefaultLogger returns a ColorLogger writing to standard output, the
// default when no logger is injected (§6).
func NewDefaultLogger() *ColorLogger {
	return NewColorLogger(os.Stdout, true)
}

// Log implements Logger. Lines already prefixed with "ERROR:" are
// colorized red; everything else is treated as an informational line.
func (c *ColorLogger) Log(line string) {
	if !c.colorsEnabled {
		fmt.Fprintln(c.out, line)
		return
	}

	switch {
	case strings.HasPrefix(line, "ERROR:"):
		c.errorColor.Fprintln(c.out, line)
	default:
		c.infoColor.Fprintln(c.out, line)
	}
}
