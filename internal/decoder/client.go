package decoder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	// ErrProcess marks a decoder run that failed to start or exited non-zero.
	ErrProcess = errors.New("decoder process failed")
	// ErrViewerLaunch marks a viewer that could not be started.
	ErrViewerLaunch = errors.New("could not open viewer")
)

// ProcessError carries the decoder's exit status. ExitCode is -1 when the
// process never started or was killed by a signal.
type ProcessError struct {
	Binary   string
	ExitCode int
	Err      error
}

func (e *ProcessError) Error() string {
	name := filepath.Base(e.Binary)
	if e.ExitCode < 0 {
		return fmt.Sprintf("error running %s: %v", name, e.Err)
	}
	return fmt.Sprintf("error running %s: exit status %d", name, e.ExitCode)
}

func (e *ProcessError) Unwrap() []error {
	return []error{ErrProcess, e.Err}
}

// Executor abstracts synchronous command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) error
}

// Launcher abstracts starting a process without waiting for it.
type Launcher interface {
	Start(binary string, args []string) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithLauncher injects a custom viewer launcher (primarily for tests).
func WithLauncher(launcher Launcher) Option {
	return func(c *Client) {
		if launcher != nil {
			c.launcher = launcher
		}
	}
}

// WithOutput routes decoder stdout and stderr to the given writers.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(c *Client) {
		c.stdout = stdout
		c.stderr = stderr
	}
}

// Client wraps decoder and viewer process handling.
type Client struct {
	exec     Executor
	launcher Launcher
	stdout   io.Writer
	stderr   io.Writer
}

// New constructs a client backed by os/exec unless overridden.
func New(opts ...Option) *Client {
	client := &Client{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(client)
	}
	if client.exec == nil {
		client.exec = commandExecutor{stdout: client.stdout, stderr: client.stderr}
	}
	if client.launcher == nil {
		client.launcher = detachedLauncher{}
	}
	return client
}

// Decode runs cmd to completion. There is no timeout: the decoder runs until
// it exits or ctx is cancelled.
func (c *Client) Decode(ctx context.Context, cmd Command) error {
	if err := c.exec.Run(ctx, cmd.Path, cmd.Args); err != nil {
		var procErr *ProcessError
		if errors.As(err, &procErr) {
			return procErr
		}
		return &ProcessError{Binary: cmd.Path, ExitCode: exitCode(err), Err: err}
	}
	return nil
}

// OpenViewer starts viewer on output and returns as soon as the process has
// been spawned. The viewer's own outcome is never observed.
func (c *Client) OpenViewer(viewer, output string) error {
	if strings.TrimSpace(viewer) == "" {
		return fmt.Errorf("%w: viewer path not configured", ErrViewerLaunch)
	}
	if err := c.launcher.Start(viewer, []string{output}); err != nil {
		return fmt.Errorf("%w: %w", ErrViewerLaunch, err)
	}
	return nil
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

type commandExecutor struct {
	stdout io.Writer
	stderr io.Writer
}

func (e commandExecutor) Run(ctx context.Context, binary string, args []string) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ctxErr, err)
		}
		return err
	}
	return nil
}

type detachedLauncher struct{}

func (detachedLauncher) Start(binary string, args []string) error {
	cmd := exec.Command(binary, args...) //nolint:gosec
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
