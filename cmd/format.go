package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// fatih/color disables these when stdout is not a terminal.
var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

func printSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintln(w, msg)
}

func printWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "⚠ %s\n", msg)
}

func printError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintf(w, "✗ %s\n", msg)
}

func printHeader(w io.Writer, title string) {
	_, _ = headerColor.Fprintf(w, "▸ %s\n", title)
}

// printLabelValue prints one aligned "label = value (note)" line.
func printLabelValue(w io.Writer, label, value, note string) {
	_, _ = labelColor.Fprintf(w, "%-15s", label)
	fmt.Fprintf(w, " = %q ", value)
	_, _ = dimColor.Fprintf(w, "(%s)\n", note)
}
