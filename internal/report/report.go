// Package report turns a directory of flight logs into one overview chart.
package report

import (
	"context"
	"fmt"
	"math"
	"path/filepath"

	"flightpath-report/internal/airport"
	"flightpath-report/internal/config"
	"flightpath-report/internal/logging"
	"flightpath-report/internal/render"
	"flightpath-report/internal/trajectory"
)

// AircraftSummary describes what was drawn for one aircraft.
type AircraftSummary struct {
	Name           string
	Samples        int
	StatusChanges  []trajectory.Transition
	HeadingChanges []trajectory.Transition
	FinalStatus    float64 // NaN when the log is empty
	ColorIndex     int
}

// Result of a successful run.
type Result struct {
	Output   string // absolute path of the saved chart
	Geometry *airport.Geometry
	Aircraft []AircraftSummary
}

// Generate loads every log in cfg.SourceDir, draws the trajectories in
// directory order with the airport on top and saves the chart to
// cfg.Output. Nothing is written when any step fails.
func Generate(ctx context.Context, cfg *config.RenderConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logging.FromContext(ctx)

	units, err := airport.ParseBearingUnits(cfg.BearingUnits)
	if err != nil {
		return nil, &config.ConfigError{Field: "bearing_units", Value: cfg.BearingUnits, Err: err}
	}
	geo, err := airport.New(cfg.AirstripLen, cfg.AirportZone, cfg.EnterRoutes, units)
	if err != nil {
		return nil, err
	}
	if units == airport.Radians {
		log.Warn("route bearings are fed to cos/sin unconverted; routes will not be evenly spaced",
			"bearing_units", string(units))
	}
	if geo.RunwayExceedsZone() {
		log.Warn("airstrip extends beyond the airport zone",
			"airstrip_len", cfg.AirstripLen, "airport_zone", cfg.AirportZone)
	}

	trajs, err := trajectory.LoadDir(ctx, cfg.SourceDir, trajectory.LoadOptions{
		Extension: cfg.LogExtension,
		Workers:   cfg.Workers,
	})
	if err != nil {
		return nil, err
	}
	log.Info("logs loaded", "dir", cfg.SourceDir, "aircraft", len(trajs))

	scene := render.NewScene(render.Options{HeadingChanges: cfg.DrawHeadingChanges})
	res := &Result{Geometry: geo, Aircraft: make([]AircraftSummary, 0, len(trajs))}
	for _, tr := range trajs {
		sum := summarize(tr)
		sum.ColorIndex, err = scene.AddTrajectory(tr, indices(sum.StatusChanges), indices(sum.HeadingChanges))
		if err != nil {
			return nil, fmt.Errorf("draw %s: %w", tr.Source, err)
		}
		log.Debug("trajectory drawn",
			"aircraft", tr.Name,
			"samples", sum.Samples,
			"status_changes", len(sum.StatusChanges),
			"heading_changes", len(sum.HeadingChanges),
			"color", render.Hex(render.Palette[sum.ColorIndex]))
		res.Aircraft = append(res.Aircraft, sum)
	}
	if err := scene.AddAirport(geo); err != nil {
		return nil, fmt.Errorf("draw airport: %w", err)
	}

	out, err := filepath.Abs(cfg.Output)
	if err != nil {
		return nil, &config.ConfigError{Field: "output", Value: cfg.Output, Err: err}
	}
	if err := scene.Save(out); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	log.Info("Report saved at " + out)
	res.Output = out
	return res, nil
}

func summarize(tr *trajectory.Trajectory) AircraftSummary {
	sum := AircraftSummary{
		Name:           tr.Name,
		Samples:        tr.Len(),
		StatusChanges:  trajectory.Transitions(tr, trajectory.FieldStatus),
		HeadingChanges: trajectory.Transitions(tr, trajectory.FieldHeading),
		FinalStatus:    math.NaN(),
	}
	if n := tr.Len(); n > 0 {
		sum.FinalStatus = tr.Samples[n-1].Status
	}
	return sum
}

func indices(ts []trajectory.Transition) []int {
	idx := make([]int, len(ts))
	for i, t := range ts {
		idx[i] = t.Index
	}
	return idx
}
