package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/josephlewis42/myshell/core/logger"
	"github.com/josephlewis42/myshell/core/vos"
)

// ErrNotFound is the error resulting if a path search failed to find an
// executable file.
var ErrNotFound = exec.ErrNotFound

// Termination describes how a child process ended.
type Termination struct {
	// ExitCode is the exit status of a normal exit, -1 if signaled.
	ExitCode int
	// Signal is the terminating signal, nil for a normal exit.
	Signal os.Signal
	// Duration is the wall time between start and termination.
	Duration time.Duration
}

// Signaled reports whether the child was killed by a signal.
func (t Termination) Signaled() bool {
	return t.Signal != nil
}

func (t Termination) String() string {
	if t.Signaled() {
		return fmt.Sprintf("signal: %v", t.Signal)
	}
	return fmt.Sprintf("exit status %d", t.ExitCode)
}

// LaunchError is returned when a child could not be started, either because
// the program couldn't be found or executed or because the process itself
// couldn't be created. No child exists when it is returned.
type LaunchError struct {
	// Name is the program as the user typed it.
	Name string
	Err  error
}

func (e *LaunchError) Error() string {
	return e.Name + ": " + describe(e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Launcher runs external programs to completion.
type Launcher interface {
	Launch(ctx context.Context, argv []string) (Termination, error)
}

// ProcessLauncher starts real child processes that inherit the given
// streams.
//
// Children start in the host process's working directory unless Dir is set.
// That matches a shell on vos.HostOS, whose Chdir moves the host process.
type ProcessLauncher struct {
	// Dir, if set, supplies the child's working directory.
	Dir vos.VDir

	// Stdin is handed to the child unchanged. If nil, the child reads from
	// the null device.
	Stdin *os.File

	Stdout io.Writer
	Stderr io.Writer
}

var _ Launcher = (*ProcessLauncher)(nil)

// Launch resolves argv[0] on the PATH, starts it with argv as its argument
// vector and blocks until it exits or is killed by a signal.
func (l *ProcessLauncher) Launch(ctx context.Context, argv []string) (Termination, error) {
	if len(argv) == 0 {
		return Termination{}, errors.New("launch: empty argument vector")
	}

	// Not CommandContext: a running child is never cancelled by the shell.
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Args = argv
	if l.Stdin != nil {
		cmd.Stdin = l.Stdin
	}
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	if l.Dir != nil {
		dir, err := l.Dir.Getwd()
		if err != nil {
			return Termination{}, &LaunchError{Name: argv[0], Err: err}
		}
		cmd.Dir = dir
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return Termination{}, &LaunchError{Name: argv[0], Err: err}
	}

	logger.FromCtx(ctx).Debug().Int("pid", cmd.Process.Pid).Strs("argv", argv).Msg("started child")

	// Wait only returns on exit or death by signal; stops are not reported
	// since the child is never waited on with WUNTRACED.
	err := cmd.Wait()
	state := cmd.ProcessState
	if state == nil {
		// The child was reaped by someone else or the wait failed outright.
		return Termination{ExitCode: -1, Duration: time.Since(start)}, err
	}

	term := Termination{
		ExitCode: state.ExitCode(),
		Duration: time.Since(start),
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		term.Signal = ws.Signal()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// A non-zero exit is a normal termination for the shell.
		err = nil
	}

	return term, err
}

// describe renders err without Go's operation prefixes so diagnostics read
// "<path>: <reason>".
func describe(err error) string {
	var execErr *exec.Error
	var pathErr *fs.PathError
	switch {
	case errors.As(err, &execErr):
		return execErr.Err.Error()
	case errors.As(err, &pathErr):
		return pathErr.Err.Error()
	default:
		return err.Error()
	}
}
