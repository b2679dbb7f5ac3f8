package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/cratepack/internal/theme"
)

// Tea runs one small bubbletea program per question.
type Tea struct {
	in  io.Reader
	out io.Writer
	th  theme.Theme
}

func NewTea(in io.Reader, out io.Writer, th theme.Theme) *Tea {
	return &Tea{in: in, out: out, th: th}
}

func (p *Tea) Input(label string, o InputOpt) (string, error) {
	final, err := p.run(newInputModel(p.th, label, o))
	if err != nil {
		return "", err
	}
	m, ok := final.(inputModel)
	if !ok || m.aborted || !m.done {
		return "", ErrAborted
	}
	return m.value, nil
}

func (p *Tea) Confirm(label string, def bool) (bool, error) {
	final, err := p.run(newConfirmModel(p.th, label, def))
	if err != nil {
		return false, err
	}
	m, ok := final.(confirmModel)
	if !ok || m.aborted || !m.done {
		return false, ErrAborted
	}
	return m.value, nil
}

func (p *Tea) run(m tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}

type inputModel struct {
	th      theme.Theme
	label   string
	opt     InputOpt
	input   textinput.Model
	errMsg  string
	value   string
	done    bool
	aborted bool
}

func newInputModel(th theme.Theme, label string, o InputOpt) inputModel {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = o.Default
	in.CharLimit = 0
	in.Focus()
	return inputModel{th: th, label: label, opt: o, input: in}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			val, err := m.opt.resolve(m.input.Value())
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.value = val
			m.done = true
			return m, tea.Quit
		}
		m.errMsg = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	switch {
	case m.done:
		return m.th.Answered(m.label, m.value) + "\n"
	case m.aborted:
		return m.th.Question(m.label, m.opt.hint()) + "\n"
	}
	s := m.th.Question(m.label, m.opt.hint()) + m.input.View()
	if m.errMsg != "" {
		s += "\n" + m.th.Invalid(m.errMsg)
	}
	return s
}

type confirmModel struct {
	th      theme.Theme
	label   string
	def     bool
	value   bool
	done    bool
	aborted bool
}

func newConfirmModel(th theme.Theme, label string, def bool) confirmModel {
	return confirmModel{th: th, label: label, def: def}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.value = m.def
		m.done = true
		return m, tea.Quit
	case tea.KeyRunes:
		if v, ok := parseConfirm(string(km.Runes), m.def); ok {
			m.value = v
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return m.th.Answered(m.label, theme.ConfirmValue(m.value)) + "\n"
	}
	s := m.th.Question(m.label, theme.ConfirmHint(m.def))
	if m.aborted {
		s += "\n"
	}
	return s
}
