package workflow

import (
	"context"
	"errors"

	"dartdecode/internal/config"
	"dartdecode/internal/decoder"
	"dartdecode/internal/prompt"
	"dartdecode/internal/runlock"
	"dartdecode/internal/tokens"
)

// Kind classifies run failures.
type Kind string

const (
	KindNone                     Kind = ""
	KindConfigNotFound           Kind = "config_not_found"
	KindConfigParseError         Kind = "config_parse_error"
	KindConfigIncomplete         Kind = "config_incomplete"
	KindTokenPathNotFound        Kind = "token_path_not_found"
	KindMissingDecoderBinary     Kind = "missing_decoder_binary"
	KindMissingDecoderExecutable Kind = "missing_decoder_executable"
	KindDecoderProcessError      Kind = "decoder_process_error"
	KindViewerLaunchError        Kind = "viewer_launch_error"
	KindInputClosed              Kind = "input_closed"
	KindCanceled                 Kind = "canceled"
	KindBusy                     Kind = "run_busy"
	KindUnknown                  Kind = "unknown"
)

// Fatal reports whether a failure of this kind aborts the run.
func (k Kind) Fatal() bool {
	return k != KindNone && k != KindViewerLaunchError
}

var kindSentinels = []struct {
	err  error
	kind Kind
}{
	{context.Canceled, KindCanceled},
	{context.DeadlineExceeded, KindCanceled},
	{config.ErrNotFound, KindConfigNotFound},
	{config.ErrParse, KindConfigParseError},
	{config.ErrIncomplete, KindConfigIncomplete},
	{tokens.ErrNotFound, KindTokenPathNotFound},
	{decoder.ErrMissingTrace, KindMissingDecoderBinary},
	{decoder.ErrMissingExecutable, KindMissingDecoderExecutable},
	{decoder.ErrProcess, KindDecoderProcessError},
	{decoder.ErrViewerLaunch, KindViewerLaunchError},
	{prompt.ErrInputClosed, KindInputClosed},
	{runlock.ErrBusy, KindBusy},
}

// KindOf returns the classification of err, or KindNone for nil.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, entry := range kindSentinels {
		if errors.Is(err, entry.err) {
			return entry.kind
		}
	}
	return KindUnknown
}

// StepError records where a run stopped. State is the last state reached
// before the failing step.
type StepError struct {
	State State
	Err   error
}

func (e *StepError) Error() string {
	return e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Kind is shorthand for KindOf(e).
func (e *StepError) Kind() Kind {
	return KindOf(e.Err)
}
