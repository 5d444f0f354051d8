// Package prompt collects run parameters from the operator.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Question is one value to ask for.
type Question struct {
	Label   string
	Default string // returned for a blank answer
}

// ErrAborted is returned when the operator cancels the form.
var ErrAborted = errors.New("prompt aborted")

const promptColor = lipgloss.Color("11")

// Ask returns one answer per question, with blank answers replaced by the
// question's default. A terminal gets an interactive form; any other reader
// is consumed one line per answer.
func Ask(in io.Reader, out io.Writer, qs []Question) ([]string, error) {
	if IsTerminal(in) {
		return askForm(in, out, qs)
	}
	return askLines(in, out, qs)
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r any) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func askLines(in io.Reader, out io.Writer, qs []Question) ([]string, error) {
	style := lipgloss.NewRenderer(out).NewStyle().Foreground(promptColor)
	sc := bufio.NewScanner(in)
	answers := make([]string, len(qs))
	for i, q := range qs {
		fmt.Fprint(out, style.Render(label(q)))
		var line string
		if sc.Scan() {
			line = sc.Text()
		} else if err := sc.Err(); err != nil {
			return nil, err
		}
		answers[i] = orDefault(line, q.Default)
	}
	return answers, nil
}

func label(q Question) string {
	if q.Default == "" {
		return q.Label + ": "
	}
	return fmt.Sprintf("%s [%s]: ", q.Label, q.Default)
}

func orDefault(answer, def string) string {
	if a := strings.TrimSpace(answer); a != "" {
		return a
	}
	return def
}
