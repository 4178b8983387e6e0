package check

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type colorFunc func(a ...interface{}) string

// Logger renders diagnostics for humans on stderr.
// Each diagnostic becomes one line:
//
//	[<path>:<line>] <SEVERITY>: <message> <reference>
type Logger struct {
	stderr io.Writer
	red    colorFunc
	green  colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		stderr: stderr,
	}
}

func (l *Logger) Output(diag *Diagnostic) {
	severity := l.green("INFO")
	if diag.Verdict != VerdictAllowed {
		severity = l.red("ERROR")
	}
	fmt.Fprintf(l.stderr, "[%s:%d] %s: %s %s\n", diag.File, diag.Line, severity, diag.Message(), diag.Ref)
}
