package airport

import (
	"fmt"
	"math"
)

// RangeError reports a geometry parameter outside its accepted range.
type RangeError struct {
	Name  string
	Value float64
	Min   float64
	Open  bool // Min itself is excluded
}

func (e *RangeError) Error() string {
	op := ">="
	if e.Open {
		op = ">"
	}
	return fmt.Sprintf("%s must be a finite number %s %g but got %g", e.Name, op, e.Min, e.Value)
}

// Validate checks the raw airport parameters.
func Validate(airstripLen, zoneRadius float64, routes int) error {
	if !positive(airstripLen) {
		return &RangeError{Name: "airstrip_len", Value: airstripLen, Open: true}
	}
	if !positive(zoneRadius) {
		return &RangeError{Name: "airport_zone", Value: zoneRadius, Open: true}
	}
	if routes < 1 {
		return &RangeError{Name: "enter_routes", Value: float64(routes), Min: 1}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
