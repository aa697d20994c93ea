// Package main hosts the dartdecode CLI entrypoint and command graph.
//
// The default command runs the interactive decode: it asks for a product,
// locates its token folder, runs SysTraceParser against dart.bin and opens
// the result in Glogg. The remaining commands expose the individual pieces
// (token resolution, path checks, config scaffolding) for troubleshooting.
//
// Keep this package lean: the run itself lives in internal/workflow and this
// package only wires terminal IO, flags and logging into it.
package main
