// Package decoder mediates access to the SysTraceParser decoder and the log
// viewer that displays its output.
//
// It builds the decoder argument list for the two supported device families,
// runs the decoder synchronously through a pluggable Executor, and starts the
// viewer detached through a pluggable Launcher. Failures surface as
// ErrProcess (with the decoder's exit code on *ProcessError) and
// ErrViewerLaunch.
//
// Prefer this package over ad-hoc exec.Command usage so exit-code reporting
// and the viewer detach policy stay in one place.
package decoder
