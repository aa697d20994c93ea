// Package logging assembles the slog loggers used for diagnostic output.
//
// It owns the console and JSON handlers, level parsing, and output routing
// (stderr plus an optional log file), and stamps every record of a run with
// its run ID. User-facing status lines are not logs and are written by the
// CLI directly; this package only carries the diagnostic trail.
package logging
