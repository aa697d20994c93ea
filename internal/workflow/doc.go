// Package workflow runs one decode from configuration to viewer.
//
// Run walks a fixed sequence of states: the configuration is loaded, the
// product's token folder is resolved, the trace and decoder binaries are
// checked, a device type is chosen, the decoder command is built and executed,
// and finally the viewer is started on the output. Every collaborator that
// touches the filesystem, the terminal or a child process is injected through
// Deps so the whole run can be exercised without side effects.
//
// Failures before the decoder has finished abort the run and come back as a
// *StepError recording the last state reached. KindOf maps any returned error
// onto the Kind taxonomy used for exit reporting and structured logs.
package workflow
