package trajectory

// Transition marks a sample whose field value differs from the next one.
type Transition struct {
	Index int // earlier of the two compared samples
	From  float64
	To    float64
}

// Changes returns the ascending indices i in [0, len-2] where the selected
// field of sample i differs from sample i+1. Values are discrete codes, so
// the comparison is exact.
func Changes(tr *Trajectory, field Field) []int {
	var idx []int
	for i := 0; i+1 < len(tr.Samples); i++ {
		if field.value(tr.Samples[i]) != field.value(tr.Samples[i+1]) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Transitions is Changes with the values on both sides of each change.
func Transitions(tr *Trajectory, field Field) []Transition {
	idx := Changes(tr, field)
	out := make([]Transition, 0, len(idx))
	for _, i := range idx {
		out = append(out, Transition{
			Index: i,
			From:  field.value(tr.Samples[i]),
			To:    field.value(tr.Samples[i+1]),
		})
	}
	return out
}
