package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"dartdecode/internal/decoder"
	"dartdecode/internal/workflow"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

func statusMarker(kind statusKind) string {
	switch kind {
	case statusOK:
		return "✅"
	case statusWarn, statusError:
		return "❌"
	default:
		return ""
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

func renderStatusLine(kind statusKind, message string, colorize bool) string {
	line := message
	if marker := statusMarker(kind); marker != "" {
		line = marker + " " + message
	}
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + line + ansiReset
		}
	}
	return line
}

// renderFailure formats a fatal error for the terminal.
func renderFailure(err error, colorize bool) string {
	return renderStatusLine(statusError, err.Error(), colorize)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// statusReporter prints run progress with the same markers the decoder team
// is used to.
type statusReporter struct {
	out      io.Writer
	colorize bool
}

var _ workflow.Reporter = (*statusReporter)(nil)

func newStatusReporter(out io.Writer, colorize bool) *statusReporter {
	return &statusReporter{out: out, colorize: colorize}
}

func (r *statusReporter) TokenFound(path string) {
	fmt.Fprintln(r.out, renderStatusLine(statusOK, "Found token path: "+path, r.colorize))
}

func (r *statusReporter) Running(cmd decoder.Command) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, renderStatusLine(statusInfo, "🚀 Running command:", r.colorize))
	fmt.Fprintln(r.out, cmd.String())
	fmt.Fprintln(r.out)
}

func (r *statusReporter) Decoded(output string) {
	fmt.Fprintln(r.out, renderStatusLine(statusOK, "Decode completed! Output saved to:", r.colorize))
	fmt.Fprintln(r.out, output)
}

func (r *statusReporter) ViewerOpened(string, string) {
	fmt.Fprintln(r.out, renderStatusLine(statusInfo, "📂 Opening with Glogg...", r.colorize))
}

func (r *statusReporter) ViewerFailed(err error) {
	fmt.Fprintln(r.out, renderStatusLine(statusWarn, fmt.Sprintf("Could not open with Glogg: %v", err), r.colorize))
}
