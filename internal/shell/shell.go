package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner is anything that can invoke an external program with arguments.
type Runner interface {
	Run(ctx context.Context, args ...string) (*Output, error)
	String() string
}

// Output captures the result of a command execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Command is an external program looked up on PATH at run time.
type Command struct {
	Name string
	Dir  string

	// Stdout and Stderr also receive the streams when set; output is
	// always captured into Output.
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Command for the named program.
func New(name string) *Command {
	return &Command{Name: name}
}

func (c *Command) String() string { return c.Name }

// Line renders the command line for logs.
func (c *Command) Line(args ...string) string {
	return strings.Join(append([]string{c.Name}, args...), " ")
}

// Path resolves the program on PATH.
func (c *Command) Path() (string, error) {
	bin, err := exec.LookPath(c.Name)
	if err != nil {
		return "", &NotFoundError{Name: c.Name, Err: err}
	}
	return bin, nil
}

// Run executes the program and waits for it. A non-zero exit status is
// returned as *ExitError together with the captured Output.
func (c *Command) Run(ctx context.Context, args ...string) (*Output, error) {
	bin, err := c.Path()
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = c.Dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	if c.Stdout != nil {
		cmd.Stdout = io.MultiWriter(c.Stdout, &stdoutBuf)
	}
	if c.Stderr != nil {
		cmd.Stderr = io.MultiWriter(c.Stderr, &stderrBuf)
	}

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, &ExitError{
				Line:     c.Line(args...),
				ExitCode: output.ExitCode,
				Stderr:   strings.TrimSpace(output.Stderr),
			}
		}
		return output, fmt.Errorf("executing %s: %w", c.Line(args...), err)
	}

	return output, nil
}

// NotFoundError reports a program missing from PATH.
type NotFoundError struct {
	Name string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: command not found", e.Name)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ExitError reports a program that ran and exited non-zero.
type ExitError struct {
	Line     string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: exit status %d: %s", e.Line, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s: exit status %d", e.Line, e.ExitCode)
}
