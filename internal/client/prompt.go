package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

// termPasswordReader reads passwords without echo when in is a terminal and
// falls back to reading one line otherwise, so that passwords can be piped.
type termPasswordReader struct {
	in    io.Reader
	lines *bufio.Reader
	out   io.Writer
}

func newTermPasswordReader(in io.Reader, out io.Writer) *termPasswordReader {
	return &termPasswordReader{in: in, lines: bufio.NewReader(in), out: out}
}

func (r *termPasswordReader) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	if f, ok := r.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(r.out)
		if err != nil {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := r.lines.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("error reading password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
