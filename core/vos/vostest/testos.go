package vostest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path"
	"syscall"

	"github.com/josephlewis42/myshell/core/vos"
	"github.com/spf13/afero"
)

// DefaultDir is the working directory of a fresh MemOS.
const DefaultDir = "/home/user"

// MemOS is a deterministic VOS backed by an in-memory filesystem.
type MemOS struct {
	*vos.VIOAdapter

	Fs  afero.Fs
	Cwd string

	// GetwdErr, if set, is returned by Getwd.
	GetwdErr error
}

var _ vos.VOS = (*MemOS)(nil)

// NewMemOS creates an OS with DefaultDir, /tmp and the given extra
// directories already present.
func NewMemOS(stdin io.Reader, stdout, stderr io.Writer, dirs ...string) *MemOS {
	memFs := afero.NewMemMapFs()
	for _, d := range append([]string{DefaultDir, "/tmp"}, dirs...) {
		if err := memFs.MkdirAll(d, 0755); err != nil {
			panic(err)
		}
	}

	return &MemOS{
		VIOAdapter: vos.NewVIOAdapter(stdin, stdout, stderr),
		Fs:         memFs,
		Cwd:        DefaultDir,
	}
}

func (m *MemOS) Getwd() (string, error) {
	if m.GetwdErr != nil {
		return "", m.GetwdErr
	}
	return m.Cwd, nil
}

func (m *MemOS) Chdir(dir string) error {
	target := dir
	if !path.IsAbs(target) {
		target = path.Join(m.Cwd, target)
	}
	target = path.Clean(target)

	info, err := m.Fs.Stat(target)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOENT}
	case err != nil:
		return &fs.PathError{Op: "chdir", Path: dir, Err: err}
	case !info.IsDir():
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	}

	m.Cwd = target
	return nil
}

// Session is a scripted interactive session: Input is fed to the shell and
// everything it writes is captured in Output.
type Session struct {
	OS     *MemOS
	Output *bytes.Buffer
}

// NewSession creates a MemOS reading input and writing both stdout and
// stderr to a single buffer, in order.
func NewSession(input string, dirs ...string) *Session {
	out := &bytes.Buffer{}
	return &Session{
		OS:     NewMemOS(bytes.NewBufferString(input), out, out, dirs...),
		Output: out,
	}
}
