package shell

import (
	"fmt"
)

// ShellBuiltin is a command that runs inside the shell process.
type ShellBuiltin interface {
	Main(s *Shell, args []string) Continuation
}

type ShellBuiltinFunc func(s *Shell, args []string) Continuation

func (f ShellBuiltinFunc) Main(s *Shell, args []string) Continuation {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// Builtin pairs a command name with its implementation.
type Builtin struct {
	Name string
	ShellBuiltin
}

// builtinTable is the closed set of builtins in help order. It's populated
// once in init() and never modified afterwards.
var builtinTable []Builtin

// AllBuiltins returns a copy of the builtin table.
func AllBuiltins() []Builtin {
	return append([]Builtin(nil), builtinTable...)
}

// LookupBuiltin finds a builtin by exact, case-sensitive name.
func LookupBuiltin(name string) (ShellBuiltin, bool) {
	for _, b := range builtinTable {
		if b.Name == name {
			return b.ShellBuiltin, true
		}
	}
	return nil, false
}

// Cd is the cd shell builtin. It takes exactly one directory; extra
// arguments are ignored.
func Cd(s *Shell, args []string) Continuation {
	if len(args) < 2 {
		s.errorf("expected argument to %q", args[0])
		return Continue
	}

	if err := s.VirtualOS.Chdir(args[1]); err != nil {
		s.errorf("%s: %s: %s", args[0], args[1], describe(err))
	}
	return Continue
}

// Help lists the builtins.
func Help(s *Shell, args []string) Continuation {
	w := s.VirtualOS.Stdout()
	fmt.Fprintf(w, "%s - a minimal command interpreter\n", s.name)
	fmt.Fprintln(w, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(w, "Built-in commands:")

	for _, b := range builtinTable {
		fmt.Fprintf(w, "  %s\n", b.Name)
	}

	fmt.Fprintln(w, "Use the man command for information on other programs.")
	return Continue
}

// Exit quits the shell.
func Exit(s *Shell, args []string) Continuation {
	return Stop
}

func init() {
	builtinTable = []Builtin{
		{"cd", ShellBuiltinFunc(Cd)},
		{"help", ShellBuiltinFunc(Help)},
		{"exit", ShellBuiltinFunc(Exit)},
	}
}
