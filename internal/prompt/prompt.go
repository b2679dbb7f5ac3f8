// Package prompt asks the questions of a run. Two backends share one
// contract: Tea drives bubbletea widgets on a terminal, Line reads plain lines
// when stdin is piped.
package prompt

import (
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/unkn0wn-root/cratepack/internal/theme"
)

// ErrAborted is returned when input ends or the user interrupts a prompt.
var ErrAborted = errors.New("prompt: aborted")

// InputOpt describes a free-text question.
type InputOpt struct {
	Default    string
	AllowEmpty bool
	Validate   func(string) error
}

type Prompter interface {
	Input(label string, o InputOpt) (string, error)
	Confirm(label string, def bool) (bool, error)
}

// ForTerminal picks Tea when in is a terminal and Line otherwise.
func ForTerminal(in *os.File, out io.Writer, th theme.Theme) Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return NewTea(in, out, th)
	}
	return NewLine(in, out, th)
}

func (o InputOpt) resolve(raw string) (string, error) {
	val := strings.TrimSpace(raw)
	if val == "" {
		val = o.Default
	}
	if val == "" && !o.AllowEmpty {
		return "", errors.New("a value is required")
	}
	if o.Validate != nil {
		if err := o.Validate(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (o InputOpt) hint() string {
	if o.Default == "" {
		return ""
	}
	return "(" + o.Default + ")"
}

// parseConfirm maps a typed answer to a boolean; ok is false for anything
// that is not a recognised yes/no word.
func parseConfirm(raw string, def bool) (v bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return def, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}
