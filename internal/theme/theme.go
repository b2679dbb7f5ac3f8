package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	markQuestion = "?"
	markDone     = "✔"
	markError    = "✘"
	markCaret    = "›"
	markDot      = "·"
)

// Theme holds the styles shared by every prompt and progress line of a run.
// It is built once and passed by value; nothing here is process-global.
type Theme struct {
	Prefix  lipgloss.Style
	Prompt  lipgloss.Style
	Hint    lipgloss.Style
	Caret   lipgloss.Style
	Answer  lipgloss.Style
	Done    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
}

// ForWriter binds the styles to w so color detection follows the stream the
// text is written to.
func ForWriter(w io.Writer) Theme {
	return New(lipgloss.NewRenderer(w))
}

func New(r *lipgloss.Renderer) Theme {
	accent := lipgloss.Color("#7D56F4")

	return Theme{
		Prefix:  r.NewStyle().Foreground(lipgloss.Color("#FBC859")).Bold(true),
		Prompt:  r.NewStyle().Foreground(lipgloss.Color("#E5E1FF")).Bold(true),
		Hint:    r.NewStyle().Foreground(lipgloss.Color("#867CC1")),
		Caret:   r.NewStyle().Foreground(accent).Bold(true),
		Answer:  r.NewStyle().Foreground(lipgloss.Color("#15AABF")),
		Done:    r.NewStyle().Foreground(lipgloss.Color("#6EF17E")).Bold(true),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#FF6E6E")),
		Success: r.NewStyle().Foreground(lipgloss.Color("#6EF17E")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("#FFB61E")),
	}
}

// Question renders the line shown while a prompt waits for input.
func (t Theme) Question(label, hint string) string {
	s := t.Prefix.Render(markQuestion) + " " + t.Prompt.Render(label)
	if hint != "" {
		s += " " + t.Hint.Render(hint)
	}
	return s + " " + t.Caret.Render(markCaret) + " "
}

// Answered renders the line left behind once a prompt is resolved.
func (t Theme) Answered(label, value string) string {
	return t.Done.Render(markDone) + " " + t.Prompt.Render(label) + " " +
		t.Hint.Render(markDot) + " " + t.Answer.Render(value)
}

// Invalid renders a validation message under a prompt.
func (t Theme) Invalid(msg string) string {
	return t.Error.Render(markError + " " + msg)
}

// ConfirmHint returns the yes/no hint with the default capitalised.
func ConfirmHint(def bool) string {
	if def {
		return "(Y/n)"
	}
	return "(y/N)"
}

// ConfirmValue is the word shown for a resolved yes/no prompt.
func ConfirmValue(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
