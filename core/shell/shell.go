package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/josephlewis42/myshell/core/logger"
	"github.com/josephlewis42/myshell/core/vos"
)

const (
	DefaultName           = "myshell"
	DefaultFallbackPrompt = DefaultName + "$ "
)

// Continuation tells the loop whether to prompt again.
type Continuation bool

const (
	Continue Continuation = true
	Stop     Continuation = false
)

func (c Continuation) String() string {
	if c == Continue {
		return "continue"
	}
	return "stop"
}

// State of the read-evaluate loop.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options configures a Shell. Zero values select defaults.
type Options struct {
	// Name prefixes every diagnostic.
	Name string
	// FallbackPrompt is shown if the working directory is unavailable.
	FallbackPrompt string
	// ColorPrompt colours the working directory in the prompt.
	ColorPrompt bool
	// Launcher runs external programs, defaults to a ProcessLauncher bound
	// to the VOS streams. The default leaves children in the host working
	// directory, so it suits vos.HostOS.
	Launcher Launcher
	// Events records every command run, defaults to dropping them.
	Events *logger.SessionLogger
}

type Shell struct {
	VirtualOS vos.VOS

	name           string
	fallbackPrompt string
	promptColor    *color.Color
	reader         *LineReader
	launcher       Launcher
	events         *logger.SessionLogger
	state          State
}

// New creates a shell reading commands from the VOS's stdin.
func New(virtualOS vos.VOS, opts Options) *Shell {
	s := &Shell{
		VirtualOS:      virtualOS,
		name:           opts.Name,
		fallbackPrompt: opts.FallbackPrompt,
		reader:         NewLineReader(virtualOS.Stdin()),
		launcher:       opts.Launcher,
		events:         opts.Events,
		state:          Running,
	}

	if s.name == "" {
		s.name = DefaultName
	}
	if s.fallbackPrompt == "" {
		s.fallbackPrompt = DefaultFallbackPrompt
	}
	if opts.ColorPrompt {
		s.promptColor = color.New(color.FgBlue, color.Bold)
		s.promptColor.EnableColor()
	}
	if s.launcher == nil {
		// Only hand over a real file: any other reader would be drained by
		// the copy goroutine os/exec sets up, eating the shell's own input.
		stdin, _ := vos.StdinFile(virtualOS)
		s.launcher = &ProcessLauncher{
			Stdin:  stdin,
			Stdout: virtualOS.Stdout(),
			Stderr: virtualOS.Stderr(),
		}
	}
	if s.events == nil {
		s.events = logger.NewNopLogger().Sessionless()
	}

	return s
}

// Name is the prefix used for diagnostics.
func (s *Shell) Name() string {
	return s.name
}

// State returns the loop state.
func (s *Shell) State() State {
	return s.state
}

// errorf writes one diagnostic line to stderr.
func (s *Shell) errorf(format string, a ...interface{}) {
	fmt.Fprintf(s.VirtualOS.Stderr(), "%s: %s\n", s.name, fmt.Sprintf(format, a...))
}

func (s *Shell) prompt() string {
	pwd, err := s.VirtualOS.Getwd()
	if err != nil {
		s.errorf("getcwd: %s", describe(err))
		return s.fallbackPrompt
	}

	if s.promptColor != nil {
		pwd = s.promptColor.Sprint(pwd)
	}
	return pwd + "$ "
}

// Run prompts for and executes commands until exit or the end of input.
func (s *Shell) Run(ctx context.Context) {
	log := logger.FromCtx(ctx)

	for s.state == Running {
		fmt.Fprint(s.VirtualOS.Stdout(), s.prompt())

		line, err := s.reader.ReadLine()
		switch {
		case errors.Is(err, io.EOF):
			// Finish the prompt's line.
			fmt.Fprintln(s.VirtualOS.Stdout())
			s.stop("eof")
			continue

		case err != nil:
			s.errorf("read: %v", err)
			s.stop("read_error")
			continue
		}

		args := Tokenize(line)
		if len(args) == 0 {
			continue // empty line
		}

		if s.Execute(ctx, args) == Stop {
			s.stop("exit")
		}
	}

	log.Debug().Msg("shell stopped")
}

func (s *Shell) stop(reason string) {
	s.events.SessionEnd(reason)
	s.state = Stopped
}

// Execute runs a builtin or an external program.
func (s *Shell) Execute(ctx context.Context, args []string) Continuation {
	if len(args) == 0 {
		return Continue
	}

	if builtin, ok := LookupBuiltin(args[0]); ok {
		logger.FromCtx(ctx).Debug().Strs("argv", args).Msg("builtin")
		s.events.Builtin(args)
		return builtin.Main(s, args)
	}

	return s.launch(ctx, args)
}

// launch runs an external program. The program's exit status never stops
// the shell.
func (s *Shell) launch(ctx context.Context, args []string) Continuation {
	log := logger.FromCtx(ctx)

	term, err := s.launcher.Launch(ctx, args)
	var launchErr *LaunchError
	if errors.As(err, &launchErr) {
		s.errorf("%v", launchErr)
		s.events.LaunchError(args, err)
		return Continue
	}
	if err != nil {
		// The child was started, only waiting on it failed.
		s.errorf("%s: %v", args[0], err)
	}

	signal := ""
	if term.Signaled() {
		signal = term.Signal.String()
	}
	log.Debug().Strs("argv", args).Stringer("status", term).Dur("took", term.Duration).Msg("child terminated")
	s.events.Launch(args, term.ExitCode, signal, term.Duration)

	return Continue
}
