// Package airport builds the static airport overlay: zone boundary, runway
// and the entry routes that lead from the boundary to a runway tip.
package airport

import (
	"fmt"
	"math"
)

// BearingUnits selects how route bearings are fed to the trigonometry.
type BearingUnits string

const (
	// Degrees converts each bearing to radians first.
	Degrees BearingUnits = "degrees"
	// Radians feeds the bearing value to cos/sin unchanged, matching the
	// simulator's own route layout.
	Radians BearingUnits = "radians"
)

// ParseBearingUnits accepts "degrees", "radians" or an empty string (degrees).
func ParseBearingUnits(s string) (BearingUnits, error) {
	switch BearingUnits(s) {
	case "", Degrees:
		return Degrees, nil
	case Radians:
		return Radians, nil
	}
	return "", fmt.Errorf("unknown bearing units %q (want degrees or radians)", s)
}

// Point is a position in airport coordinates, meters.
type Point struct {
	X float64
	Y float64
}

// Dist returns the distance from the origin.
func (p Point) Dist() float64 { return math.Hypot(p.X, p.Y) }

// Route is one entry corridor from the zone boundary to a runway tip.
type Route struct {
	ID          int
	Bearing     float64 // degrees, 360/N apart
	Enter       Point   // on the zone boundary
	LandingZone Point   // nearer runway tip
}

// Geometry is the airport layout for one render. It is not modified after New.
type Geometry struct {
	AirstripLen float64
	ZoneRadius  float64
	Units       BearingUnits
	Routes      []Route
}

// New validates the parameters and lays out n evenly spaced entry routes.
func New(airstripLen, zoneRadius float64, n int, units BearingUnits) (*Geometry, error) {
	if err := Validate(airstripLen, zoneRadius, n); err != nil {
		return nil, err
	}
	if units == "" {
		units = Degrees
	}
	g := &Geometry{
		AirstripLen: airstripLen,
		ZoneRadius:  zoneRadius,
		Units:       units,
		Routes:      make([]Route, n),
	}
	step := 360.0 / float64(n)
	for i := range g.Routes {
		bearing := step * float64(i)
		angle := bearing
		if units == Degrees {
			angle = bearing * math.Pi / 180
		}
		enter := Point{X: zoneRadius * math.Cos(angle), Y: zoneRadius * math.Sin(angle)}
		g.Routes[i] = Route{
			ID:          i,
			Bearing:     bearing,
			Enter:       enter,
			LandingZone: g.nearerTip(enter),
		}
	}
	return g, nil
}

// RunwayTips returns the western and eastern runway ends.
func (g *Geometry) RunwayTips() (Point, Point) {
	half := g.AirstripLen / 2
	return Point{X: -half}, Point{X: half}
}

func (g *Geometry) nearerTip(p Point) Point {
	west, east := g.RunwayTips()
	if p.X > 0 {
		return east
	}
	return west
}

// RunwayExceedsZone reports whether a runway tip lies outside the zone.
func (g *Geometry) RunwayExceedsZone() bool {
	return g.AirstripLen/2 > g.ZoneRadius
}
