package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// LineReader shows a prompt and returns the next input line without its
// line terminator. io.EOF means the input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// bufferedReader serves pipes and redirected files.
type bufferedReader struct {
	r *bufio.Reader
	w io.Writer
}

// NewBufferedReader reads lines from r and writes prompts to w.
func NewBufferedReader(r io.Reader, w io.Writer) LineReader {
	return &bufferedReader{r: bufio.NewReader(r), w: w}
}

func (b *bufferedReader) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(b.w, prompt); err != nil {
		return "", err
	}
	line, err := b.r.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		// Last line without a trailing newline.
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

// Terminal is a LineReader with line editing and history. It is also the
// writer to use for output while the terminal is in raw mode.
type Terminal struct {
	t *term.Terminal
}

// NewTerminal wraps a terminal already switched to raw mode by the caller.
func NewTerminal(rw io.ReadWriter) *Terminal {
	return &Terminal{t: term.NewTerminal(rw, "")}
}

func (t *Terminal) ReadLine(prompt string) (string, error) {
	t.t.SetPrompt(prompt)
	return t.t.ReadLine()
}

// Write translates newlines for the raw terminal.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.t.Write(p)
}
