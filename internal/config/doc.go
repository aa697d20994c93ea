// Package config loads and validates the decoder configuration and the
// optional tool settings.
//
// The decoder configuration is the JSON file Config_decode.json that names the
// token tree, the folder holding dart.bin and SysTraceParser.exe, and the Glogg
// viewer. All three paths are required: there are no defaults and a missing
// field aborts the run before the filesystem is touched. Tool settings
// (logging) live in an optional TOML file and fall back to defaults.
//
// Always obtain paths through this package so callers receive trimmed,
// tilde-expanded values and errors that match ErrNotFound, ErrParse, or
// ErrIncomplete.
package config
