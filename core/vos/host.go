package vos

import (
	"os"

	"golang.org/x/term"
)

// HostOS is the VOS of the running process.
type HostOS struct {
	VIO
}

var _ VOS = (*HostOS)(nil)

// NewHostOS binds the real working directory to the given streams.
func NewHostOS(vio VIO) *HostOS {
	return &HostOS{VIO: vio}
}

func (*HostOS) Getwd() (string, error) {
	return os.Getwd()
}

func (*HostOS) Chdir(dir string) error {
	return os.Chdir(dir)
}

// IsTerminal reports whether w is an OS file attached to a terminal.
func IsTerminal(w interface{}) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
