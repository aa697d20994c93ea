package preflight

import (
	"dartdecode/internal/config"
	"dartdecode/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every check for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Token base", cfg.TokenBasePath, false),
		CheckDirectoryAccess("Dart folder", cfg.DartFolderPath, true),
		CheckFile("Trace file", cfg.DartBinPath()),
		CheckFile("Decoder", cfg.DecoderPath()),
	}
	return append(results, CheckViewer(cfg.GloggPath))
}

// Passed reports whether every result passed.
func Passed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// CheckViewer reports whether the viewer can be started. GloggPath may be a
// bare command name found on PATH.
func CheckViewer(viewer string) Result {
	const name = "Viewer"
	status := deps.CheckBinaries([]deps.Requirement{{
		Name:        name,
		Command:     viewer,
		Description: "Opens the decoded output",
		Optional:    true,
	}})[0]
	if !status.Available {
		return Result{Name: name, Detail: status.Detail}
	}
	detail := status.Command
	if status.Detail != "" {
		detail = status.Detail
	}
	return Result{Name: name, Passed: true, Detail: detail}
}
