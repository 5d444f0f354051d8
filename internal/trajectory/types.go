// Trajectory samples as written by the airport simulator
package trajectory

import "strconv"

// Position is an airport-centred coordinate in meters.
type Position struct {
	X float64
	Y float64
}

// Sample represents one row of a per-aircraft log.
type Sample struct {
	Timestamp string   // display label only, never parsed
	Position  Position // meters
	Aux       float64  // passed through untouched
	Heading   float64  // simulator units
	Status    float64  // discrete state code
}

// Trajectory is the ordered sample sequence of one aircraft.
type Trajectory struct {
	Name    string
	Source  string
	Samples []Sample
}

// Len returns the number of samples.
func (t *Trajectory) Len() int { return len(t.Samples) }

// Field selects the sample value compared by the transition detector.
type Field int

const (
	FieldStatus Field = iota
	FieldHeading
)

func (f Field) String() string {
	switch f {
	case FieldStatus:
		return "status"
	case FieldHeading:
		return "heading"
	}
	return "unknown"
}

func (f Field) value(s Sample) float64 {
	if f == FieldHeading {
		return s.Heading
	}
	return s.Status
}

// Aircraft status codes emitted by the simulator.
const (
	StatusApproaching = iota
	StatusEntering
	StatusInQueue
	StatusExitingQueue
	StatusDescending
	StatusLanding
	StatusLanded
	StatusCrashed
)

var statusNames = map[float64]string{
	StatusApproaching:  "Approaching",
	StatusEntering:     "Entering",
	StatusInQueue:      "InQueue",
	StatusExitingQueue: "ExitingQueue",
	StatusDescending:   "Descending",
	StatusLanding:      "Landing",
	StatusLanded:       "Landed",
	StatusCrashed:      "Crashed",
}

// StatusName returns the simulator's name for a status code, or the code
// itself when it is not one the simulator defines.
func StatusName(code float64) string {
	if n, ok := statusNames[code]; ok {
		return n
	}
	return strconv.FormatFloat(code, 'g', -1, 64)
}
