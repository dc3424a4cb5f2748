package shell

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader reads newline terminated lines of any length.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader buffers r. The reader may consume more than one line from r
// at a time.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine blocks until a full line is available and returns it without the
// trailing newline. A final line missing its newline is returned as is; the
// following call returns io.EOF. Any other error is returned unchanged.
func (lr *LineReader) ReadLine() (string, error) {
	line, err := lr.r.ReadString('\n')
	switch {
	case err == nil:
		return strings.TrimSuffix(line, "\n"), nil
	case errors.Is(err, io.EOF) && line != "":
		return line, nil
	default:
		return "", err
	}
}
