package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/unkn0wn-root/cratepack/internal/theme"
)

// Line is the plain-text backend. Invalid answers re-ask the question.
type Line struct {
	in  *bufio.Reader
	out io.Writer
	th  theme.Theme
}

func NewLine(in io.Reader, out io.Writer, th theme.Theme) *Line {
	return &Line{in: bufio.NewReader(in), out: out, th: th}
}

func (l *Line) Input(label string, o InputOpt) (string, error) {
	for {
		if err := l.ask(label, o.hint()); err != nil {
			return "", err
		}
		raw, err := l.readLine()
		if err != nil {
			return "", err
		}
		val, err := o.resolve(raw)
		if err != nil {
			if werr := l.invalid(err.Error()); werr != nil {
				return "", werr
			}
			continue
		}
		return val, nil
	}
}

func (l *Line) Confirm(label string, def bool) (bool, error) {
	for {
		if err := l.ask(label, theme.ConfirmHint(def)); err != nil {
			return false, err
		}
		raw, err := l.readLine()
		if err != nil {
			return false, err
		}
		if v, ok := parseConfirm(raw, def); ok {
			return v, nil
		}
		if err := l.invalid("please answer y or n"); err != nil {
			return false, err
		}
	}
}

func (l *Line) ask(label, hint string) error {
	if _, err := io.WriteString(l.out, l.th.Question(label, hint)); err != nil {
		return fmt.Errorf("prompt: write %q: %w", label, err)
	}
	return nil
}

func (l *Line) invalid(msg string) error {
	if _, err := fmt.Fprintln(l.out, l.th.Invalid(msg)); err != nil {
		return fmt.Errorf("prompt: write: %w", err)
	}
	return nil
}

// readLine returns one line without its terminator. A final line without a
// newline is accepted; end of input before any byte is ErrAborted.
func (l *Line) readLine() (string, error) {
	s, err := l.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("prompt: read: %w", err)
		}
		if s == "" {
			_, _ = io.WriteString(l.out, "\n")
			return "", ErrAborted
		}
	}
	if _, werr := io.WriteString(l.out, "\n"); werr != nil {
		return "", fmt.Errorf("prompt: write: %w", werr)
	}
	return trimEOL(s), nil
}

func trimEOL(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
	}
	if n := len(s); n > 0 && s[n-1] == '\r' {
		s = s[:n-1]
	}
	return s
}
