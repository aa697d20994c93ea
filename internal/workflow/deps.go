package workflow

import (
	"context"
	"log/slog"

	"dartdecode/internal/config"
	"dartdecode/internal/decoder"
	"dartdecode/internal/tokens"
)

// Prompter supplies the interactive answers.
type Prompter interface {
	Product(ctx context.Context) (string, error)
	DeviceType(ctx context.Context) (decoder.DeviceType, error)
}

// Resolver finds the token folder for a product.
type Resolver interface {
	Resolve(product string) (string, error)
}

// Decoder runs the decoder and starts the viewer.
type Decoder interface {
	Decode(ctx context.Context, cmd decoder.Command) error
	OpenViewer(viewer, output string) error
}

// Lock is held for the duration of a decode.
type Lock interface {
	Release() error
}

// Reporter receives the user-facing progress of a run. Fatal errors are not
// reported here; they are returned from Run.
type Reporter interface {
	TokenFound(path string)
	Running(cmd decoder.Command)
	Decoded(output string)
	ViewerOpened(viewer, output string)
	ViewerFailed(err error)
}

// Deps are the collaborators of a run. LoadConfig, Prompter and Decoder are
// required; the rest fall back to the real implementations or no-ops.
type Deps struct {
	LoadConfig  func() (*config.Config, error)
	Prompter    Prompter
	NewResolver func(base string, skipEmpty bool) Resolver
	Decoder     Decoder
	FileExists  decoder.FileCheck
	AcquireLock func(output string) (Lock, error)
	Reporter    Reporter
	Logger      *slog.Logger
	RunID       string
}

// Options carry answers supplied up front. Empty Product or Device means the
// Prompter is asked.
type Options struct {
	Product   string
	Device    decoder.DeviceType
	NoViewer  bool
	SkipEmpty bool
}

func defaultResolver(base string, skipEmpty bool) Resolver {
	return tokens.New(base, tokens.WithSkipEmpty(skipEmpty))
}

type nopReporter struct{}

func (nopReporter) TokenFound(string)           {}
func (nopReporter) Running(decoder.Command)     {}
func (nopReporter) Decoded(string)              {}
func (nopReporter) ViewerOpened(string, string) {}
func (nopReporter) ViewerFailed(error)          {}
