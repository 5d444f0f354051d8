// Package render draws trajectories and the airport overlay onto one chart.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"flightpath-report/internal/airport"
	"flightpath-report/internal/trajectory"
)

// Label offsets in data units (meters).
const (
	NameOffsetY  = 50.0
	StampOffsetX = 80.0
	StampOffsetY = -80.0
)

const (
	zoneSegments = 180
	rangeMargin  = 1.05
)

// DefaultSize is the edge length of the square chart.
const DefaultSize = 8 * vg.Inch

// Options configures a Scene.
type Options struct {
	Title string
	// Size is the edge of the square canvas; DefaultSize when zero.
	Size vg.Length
	// HeadingChanges also marks samples where the heading changes.
	HeadingChanges bool
}

// Scene accumulates draw calls for one chart. Trajectories are drawn in
// the order they are added.
type Scene struct {
	plot   *plot.Plot
	opts   Options
	count  int
	legend []string
	square bool
	// drawn holds the plotters added for aircraft and airport, in draw order.
	drawn []plot.Plotter
}

// NewScene creates an empty chart with grid, axis labels and legend.
func NewScene(opts Options) *Scene {
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x, meters"
	p.Y.Label.Text = "y, meters"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return &Scene{plot: p, opts: opts}
}

// Count returns the number of trajectories drawn so far.
func (s *Scene) Count() int { return s.count }

// Legend returns the legend labels in draw order.
func (s *Scene) Legend() []string { return append([]string(nil), s.legend...) }

// AddTrajectory draws the path, name, status-change markers with their
// timestamps and, when enabled, heading-change markers of one aircraft.
// It returns the palette slot used.
func (s *Scene) AddTrajectory(tr *trajectory.Trajectory, status, heading []int) (int, error) {
	s.count++
	idx := ColorIndex(s.count)
	c := Palette[idx]

	if tr.Len() == 0 {
		thumb := &plotter.Line{LineStyle: draw.LineStyle{Color: c, Width: vg.Points(1)}}
		s.addLegend(tr.Name, thumb)
		return idx, nil
	}

	path := make(plotter.XYs, tr.Len())
	for i, smp := range tr.Samples {
		path[i] = plotter.XY{X: smp.Position.X, Y: smp.Position.Y}
	}
	line, points, err := plotter.NewLinePoints(path)
	if err != nil {
		return idx, fmt.Errorf("path %s: %w", tr.Name, err)
	}
	line.Color = c
	line.Width = vg.Points(1)
	points.Shape = draw.CircleGlyph{}
	points.Color = c
	points.Radius = vg.Points(1)
	s.add(line, points)
	s.addLegend(tr.Name, line, points)

	first := path[0]
	name, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: first.X, Y: first.Y + NameOffsetY}},
		Labels: []string{tr.Name},
	})
	if err != nil {
		return idx, fmt.Errorf("label %s: %w", tr.Name, err)
	}
	name.TextStyle[0].Color = c
	s.add(name)

	if len(status) > 0 {
		if err := s.addStatusChanges(tr, status, c); err != nil {
			return idx, err
		}
	}
	if s.opts.HeadingChanges && len(heading) > 0 {
		marks, err := plotter.NewScatter(pick(tr, heading, 0, 0))
		if err != nil {
			return idx, fmt.Errorf("heading changes %s: %w", tr.Name, err)
		}
		marks.Shape = draw.RingGlyph{}
		marks.Color = c
		marks.Radius = vg.Points(1.5)
		s.add(marks)
	}
	return idx, nil
}

func (s *Scene) addStatusChanges(tr *trajectory.Trajectory, idx []int, c color.RGBA) error {
	marks, err := plotter.NewScatter(pick(tr, idx, 0, 0))
	if err != nil {
		return fmt.Errorf("status changes %s: %w", tr.Name, err)
	}
	marks.Shape = draw.CircleGlyph{}
	marks.Color = c
	marks.Radius = vg.Points(3)

	stamps := make([]string, len(idx))
	for k, i := range idx {
		stamps[k] = tr.Samples[i].Timestamp
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    pick(tr, idx, StampOffsetX, StampOffsetY),
		Labels: stamps,
	})
	if err != nil {
		return fmt.Errorf("timestamps %s: %w", tr.Name, err)
	}
	for k := range labels.TextStyle {
		labels.TextStyle[k].Color = fade(c, 0.9)
		labels.TextStyle[k].Font.Size = vg.Points(6)
	}
	s.add(marks, labels)
	return nil
}

func pick(tr *trajectory.Trajectory, idx []int, dx, dy float64) plotter.XYs {
	xys := make(plotter.XYs, len(idx))
	for k, i := range idx {
		p := tr.Samples[i].Position
		xys[k] = plotter.XY{X: p.X + dx, Y: p.Y + dy}
	}
	return xys
}

func (s *Scene) add(ps ...plot.Plotter) {
	s.plot.Add(ps...)
	s.drawn = append(s.drawn, ps...)
}

func (s *Scene) addLegend(name string, thumbs ...plot.Thumbnailer) {
	s.plot.Legend.Add(name, thumbs...)
	s.legend = append(s.legend, name)
}

// AddAirport overlays the zone disk, the runway and every entry route.
func (s *Scene) AddAirport(g *airport.Geometry) error {
	zone, err := plotter.NewPolygon(circle(g.ZoneRadius, zoneSegments))
	if err != nil {
		return fmt.Errorf("airport zone: %w", err)
	}
	zone.Color = zoneColor
	zone.LineStyle.Color = zoneColor
	zone.LineStyle.Width = vg.Points(2)
	s.add(zone)
	s.addLegend("Airport zone", zone)

	west, east := g.RunwayTips()
	runway, tips, err := plotter.NewLinePoints(plotter.XYs{{X: west.X, Y: west.Y}, {X: east.X, Y: east.Y}})
	if err != nil {
		return fmt.Errorf("runway: %w", err)
	}
	runway.Color = gray
	runway.Width = vg.Points(8)
	tips.Shape = draw.BoxGlyph{}
	tips.Color = gray
	tips.Radius = vg.Points(4)
	s.add(runway, tips)

	enters := make(plotter.XYs, len(g.Routes))
	for i, r := range g.Routes {
		l, err := plotter.NewLine(plotter.XYs{{X: r.Enter.X, Y: r.Enter.Y}, {X: r.LandingZone.X, Y: r.LandingZone.Y}})
		if err != nil {
			return fmt.Errorf("route %d: %w", r.ID, err)
		}
		l.Color = black
		l.Width = vg.Points(1)
		l.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		s.add(l)
		enters[i] = plotter.XY{X: r.Enter.X, Y: r.Enter.Y}
	}
	if len(enters) > 0 {
		marks, err := plotter.NewScatter(enters)
		if err != nil {
			return fmt.Errorf("route enters: %w", err)
		}
		marks.Shape = draw.CircleGlyph{}
		marks.Color = black
		marks.Radius = vg.Points(2)
		s.add(marks)
	}
	return nil
}

func circle(r float64, n int) plotter.XYs {
	xys := make(plotter.XYs, n)
	for i := range xys {
		a := 2 * math.Pi * float64(i) / float64(n)
		xys[i] = plotter.XY{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return xys
}

// equalAspect widens the shorter axis range so one meter spans the same
// length on both axes of the data area.
func (s *Scene) equalAspect() {
	if s.square {
		return
	}
	s.square = true
	p := s.plot
	da := p.DataCanvas(draw.New(vgimg.New(s.opts.Size, s.opts.Size)))
	wPts := float64(da.Max.X - da.Min.X)
	hPts := float64(da.Max.Y - da.Min.Y)
	if wPts <= 0 || hPts <= 0 {
		return
	}
	cx, cy := (p.X.Min+p.X.Max)/2, (p.Y.Min+p.Y.Max)/2
	w, h := p.X.Max-p.X.Min, p.Y.Max-p.Y.Min
	perPt := math.Max(w/wPts, h/hPts) * rangeMargin
	if perPt == 0 || math.IsInf(perPt, 0) || math.IsNaN(perPt) {
		return
	}
	p.X.Min, p.X.Max = cx-perPt*wPts/2, cx+perPt*wPts/2
	p.Y.Min, p.Y.Max = cy-perPt*hPts/2, cy+perPt*hPts/2
}

// WriteTo encodes the chart in the given format (png, svg, pdf, ...).
func (s *Scene) WriteTo(w io.Writer, format string) (int64, error) {
	s.equalAspect()
	wt, err := s.plot.WriterTo(s.opts.Size, s.opts.Size, format)
	if err != nil {
		return 0, err
	}
	return wt.WriteTo(w)
}

// Save writes the chart to path, choosing the format from the extension
// (png when there is none). The file is replaced only once the chart has
// been fully encoded.
func (s *Scene) Save(path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		format = "png"
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".flightpath-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := s.WriteTo(tmp, format); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", format, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
