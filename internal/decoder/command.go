package decoder

import (
	"errors"
	"fmt"
	"strings"
)

// joltArgs are appended for jolt devices. They never depend on other inputs.
var joltArgs = []string{"-slotconfig", "Tron", "-showslot", "true", "-showslotabbr", "true"}

// Request carries the inputs for one decoder invocation.
type Request struct {
	DecoderPath string
	TracePath   string
	OutputPath  string
	TokenPath   string
	Device      DeviceType
}

// Command is a fully built decoder invocation.
type Command struct {
	Path string
	Args []string
}

// BuildCommand assembles the decoder invocation for req.
func BuildCommand(req Request) (Command, error) {
	if strings.TrimSpace(req.DecoderPath) == "" {
		return Command{}, errors.New("decoder path required")
	}

	args := []string{
		"-i", req.TracePath,
		"-o", req.OutputPath,
		"-t", req.TokenPath,
	}
	switch req.Device {
	case DeviceJedi:
	case DeviceJolt:
		args = append(args, joltArgs...)
	default:
		return Command{}, fmt.Errorf("%w %q", ErrUnknownDevice, req.Device)
	}
	return Command{Path: req.DecoderPath, Args: args}, nil
}

// Argv returns the executable followed by its arguments.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Path)
	return append(argv, c.Args...)
}

// String joins the argv with spaces for display.
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}
