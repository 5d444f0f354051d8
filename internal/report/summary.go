package report

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"flightpath-report/internal/render"
	"flightpath-report/internal/trajectory"
)

// DefaultWidth is the wrap width for history lines.
const DefaultWidth = 80

// Style controls console output.
type Style struct {
	Color bool
	Width int // wrap width; DefaultWidth when zero
}

type painter struct {
	r *lipgloss.Renderer
}

func newPainter(w io.Writer, st Style) painter {
	r := lipgloss.NewRenderer(w)
	if st.Color {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return painter{r: r}
}

func (p painter) fg(hex, s string) string {
	return p.r.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}

func (p painter) bold(s string) string {
	return p.r.NewStyle().Bold(true).Render(s)
}

func (p painter) dim(s string) string {
	return p.r.NewStyle().Foreground(lipgloss.Color("8")).Render(s)
}

// WriteSummary prints the airport parameters, one table row per aircraft
// and the status history of every aircraft.
func WriteSummary(w io.Writer, res *Result, st Style) error {
	width := st.Width
	if width <= 0 {
		width = DefaultWidth
	}
	p := newPainter(w, st)
	g := res.Geometry

	var b strings.Builder
	fmt.Fprintf(&b, "%s airstrip %s m, zone %s m, %d enter routes (%s)\n",
		p.bold("Airport:"), num(g.AirstripLen), num(g.ZoneRadius), len(g.Routes), g.Units)
	if res.Output != "" {
		fmt.Fprintf(&b, "%s %s\n", p.bold("Report:"), res.Output)
	}
	b.WriteString("\n")

	if len(res.Aircraft) == 0 {
		b.WriteString(p.dim("no aircraft logs found") + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	var table bytes.Buffer
	tw := tabwriter.NewWriter(&table, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "AIRCRAFT\tSAMPLES\tSTATUS CHANGES\tHEADING CHANGES\tFINAL STATUS\tCOLOR")
	for _, a := range res.Aircraft {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\n",
			a.Name, a.Samples, len(a.StatusChanges), len(a.HeadingChanges),
			finalStatus(a), render.Hex(render.Palette[a.ColorIndex]))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	lines := strings.Split(strings.TrimRight(table.String(), "\n"), "\n")
	b.WriteString(p.bold(lines[0]) + "\n")
	// Names are painted after alignment so escape codes do not skew columns.
	for i, a := range res.Aircraft {
		line := lines[i+1]
		b.WriteString(p.fg(render.Hex(render.Palette[a.ColorIndex]), a.Name) + line[len(a.Name):] + "\n")
	}

	b.WriteString("\n" + p.bold("Status history") + "\n")
	for _, a := range res.Aircraft {
		hist := a.Name + ": " + history(a)
		wrapped := wordwrap.String(hist, width)
		b.WriteString(strings.ReplaceAll(wrapped, "\n", "\n    ") + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func finalStatus(a AircraftSummary) string {
	if math.IsNaN(a.FinalStatus) {
		return "-"
	}
	return trajectory.StatusName(a.FinalStatus)
}

// history lists the status sequence, e.g. "Entering -> InQueue -> Landed".
func history(a AircraftSummary) string {
	if a.Samples == 0 {
		return "(empty log)"
	}
	if len(a.StatusChanges) == 0 {
		return trajectory.StatusName(a.FinalStatus)
	}
	parts := []string{trajectory.StatusName(a.StatusChanges[0].From)}
	for _, t := range a.StatusChanges {
		parts = append(parts, trajectory.StatusName(t.To))
	}
	return strings.Join(parts, " -> ")
}

// WriteTransitions lists every status transition, and heading transitions
// when heading is set, with the timestamp and position of the sample
// before the change.
func WriteTransitions(w io.Writer, trajs []*trajectory.Trajectory, heading bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "AIRCRAFT\tFIELD\tTIME\tX\tY\tFROM\tTO")
	for _, tr := range trajs {
		rows := 0
		rows += writeField(tw, tr, trajectory.FieldStatus, trajectory.StatusName)
		if heading {
			rows += writeField(tw, tr, trajectory.FieldHeading, num)
		}
		if rows == 0 {
			fmt.Fprintf(tw, "%s\t-\t\t\t\t\t\n", tr.Name)
		}
	}
	return tw.Flush()
}

func writeField(w io.Writer, tr *trajectory.Trajectory, f trajectory.Field, name func(float64) string) int {
	ts := trajectory.Transitions(tr, f)
	for _, t := range ts {
		s := tr.Samples[t.Index]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			tr.Name, f, s.Timestamp, num(s.Position.X), num(s.Position.Y), name(t.From), name(t.To))
	}
	return len(ts)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
