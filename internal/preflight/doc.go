// Package preflight checks that the paths named in Config_decode.json are
// usable before a decode is attempted.
//
// The CLI "dartdecode check" command renders the results as a table. The
// decode run itself only relies on the narrower checks in the decoder
// package, so a failing preflight never blocks a run.
package preflight
