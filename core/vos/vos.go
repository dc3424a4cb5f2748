package vos

import "io"

// VIO holds the standard streams of a process.
type VIO interface {
	Stdin() io.Reader
	Stdout() io.Writer
	Stderr() io.Writer
}

// VDir is the process-wide working directory.
type VDir interface {
	// Getwd returns a rooted path name corresponding to the current directory.
	Getwd() (string, error)

	// Chdir changes the current working directory to the named directory. If
	// there is an error, it will be of type *fs.PathError.
	Chdir(dir string) error
}

// VOS provides the slice of the operating system the shell touches directly.
// Everything else (program search, process creation) goes to the real OS.
type VOS interface {
	VIO
	VDir
}
