package prompt

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var runQuestions = []Question{
	{Label: "Logs directory"},
	{Label: "Airstrip length", Default: "300"},
	{Label: "Airport zone", Default: "1000"},
	{Label: "Enter routes", Default: "3"},
}

func TestAskLines(t *testing.T) {
	var out bytes.Buffer
	got, err := Ask(strings.NewReader("logs\n\n 1200 \n"), &out, runQuestions)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	want := []string{"logs", "300", "1200", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("answers = %v, want %v", got, want)
	}
	if !strings.Contains(out.String(), "Airstrip length [300]: ") {
		t.Fatalf("expected prompt with default, got %q", out.String())
	}
	if !strings.HasPrefix(out.String(), "Logs directory: ") {
		t.Fatalf("expected bare prompt for question without default, got %q", out.String())
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(strings.NewReader("")) {
		t.Fatalf("a string reader is not a terminal")
	}
}

func typeText(t *testing.T, m formModel, text string) formModel {
	t.Helper()
	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return mi.(formModel)
}

func press(t *testing.T, m formModel, k tea.KeyType) (formModel, tea.Cmd) {
	t.Helper()
	mi, cmd := m.Update(tea.KeyMsg{Type: k})
	return mi.(formModel), cmd
}

func TestFormCollectsAnswers(t *testing.T) {
	m := newFormModel(runQuestions)
	m = typeText(t, m, "logs/run-1")
	m, _ = press(t, m, tea.KeyEnter)
	if m.focus != 1 || m.done {
		t.Fatalf("expected focus on second field, got %d", m.focus)
	}
	if !strings.Contains(m.View(), "Airstrip length") {
		t.Fatalf("expected second prompt in view")
	}
	m, _ = press(t, m, tea.KeyEnter)
	m = typeText(t, m, "750")
	m, _ = press(t, m, tea.KeyEnter)
	m, cmd := press(t, m, tea.KeyEnter)
	if !m.done || cmd == nil {
		t.Fatalf("expected form to finish")
	}
	if m.View() != "" {
		t.Fatalf("finished form should render nothing")
	}
	want := []string{"logs/run-1", "300", "750", "3"}
	if got := m.answers(); !reflect.DeepEqual(got, want) {
		t.Fatalf("answers = %v, want %v", got, want)
	}
}

func TestFormAbort(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newFormModel(runQuestions)
		m = typeText(t, m, "logs")
		m, cmd := press(t, m, k)
		if !m.aborted || cmd == nil {
			t.Fatalf("%v: expected abort", k)
		}
	}
}

func TestFormEmpty(t *testing.T) {
	m := newFormModel(nil)
	if !m.done || m.Init() == nil {
		t.Fatalf("empty form should quit immediately")
	}
	if len(m.answers()) != 0 {
		t.Fatalf("expected no answers")
	}
}

func TestFormIgnoresKeysAfterCompletion(t *testing.T) {
	m := newFormModel([]Question{{Label: "a", Default: "1"}})
	m, _ = press(t, m, tea.KeyEnter)
	if !m.done {
		t.Fatalf("expected form to finish on first Enter")
	}
	m, cmd := press(t, m, tea.KeyEnter)
	if cmd != nil || !m.done {
		t.Fatalf("queued Enter must be a no-op")
	}
	m = typeText(t, m, "x")
	if got := m.answers(); !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("answers = %v, want [1]", got)
	}

	m = newFormModel(runQuestions)
	m, _ = press(t, m, tea.KeyEsc)
	m, _ = press(t, m, tea.KeyEnter)
	if !m.aborted || m.focus != 0 {
		t.Fatalf("keys after cancel must be ignored, focus=%d", m.focus)
	}
}
