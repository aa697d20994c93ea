// Package prompt reads the interactive answers a decode run needs.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"dartdecode/internal/decoder"
)

// ErrInputClosed reports that input ended before an answer was given.
var ErrInputClosed = errors.New("input closed before an answer was entered")

// Prompter asks questions on out and reads answers line by line from in.
// Reads stop waiting when the context passed to a question is cancelled.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// pending holds a read abandoned by cancellation; the next question
	// collects it instead of starting a second reader.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// New constructs a prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Product asks for the product name and returns it trimmed. An empty answer
// is returned as is.
func (p *Prompter) Product(ctx context.Context) (string, error) {
	fmt.Fprint(p.out, "Enter product name: ")
	line, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// DeviceType asks until one of the supported device types is entered.
func (p *Prompter) DeviceType(ctx context.Context) (decoder.DeviceType, error) {
	question := fmt.Sprintf("Enter device type (%s): ", decoder.PromptChoices())
	for {
		fmt.Fprint(p.out, question)
		line, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		if device, err := decoder.ParseDeviceType(line); err == nil {
			return device, nil
		}
	}
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
		p.pending = ch
	}

	var line string
	var err error
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-p.pending:
		p.pending = nil
		line, err = res.line, res.err
	}
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}
