package prompt

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formModel struct {
	questions []Question
	inputs    []textinput.Model
	focus     int
	done      bool
	aborted   bool
}

var (
	formPromptStyle = lipgloss.NewStyle().Foreground(promptColor)
	formHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newFormModel(qs []Question) formModel {
	m := formModel{questions: qs, inputs: make([]textinput.Model, len(qs))}
	for i, q := range qs {
		ti := textinput.New()
		ti.Prompt = formPromptStyle.Render(q.Label + ": ")
		ti.Placeholder = q.Default
		ti.CharLimit = 256
		ti.Width = 40
		m.inputs[i] = ti
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	} else {
		m.done = true
	}
	return m
}

func (m formModel) Init() tea.Cmd {
	if m.done {
		return tea.Quit
	}
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Keys queued behind the final Enter or a cancel are dropped.
	if m.done || m.aborted {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.inputs[m.focus].Blur()
			m.focus++
			if m.focus == len(m.inputs) {
				m.done = true
				return m, tea.Quit
			}
			return m, m.inputs[m.focus].Focus()
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	for i := 0; i <= m.focus && i < len(m.inputs); i++ {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString(formHelpStyle.Render("enter: accept (blank keeps the default) • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m formModel) answers() []string {
	out := make([]string, len(m.inputs))
	for i, ti := range m.inputs {
		out[i] = orDefault(ti.Value(), m.questions[i].Default)
	}
	return out
}

func askForm(in io.Reader, out io.Writer, qs []Question) ([]string, error) {
	p := tea.NewProgram(newFormModel(qs), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m := final.(formModel)
	if m.aborted {
		return nil, ErrAborted
	}
	return m.answers(), nil
}
