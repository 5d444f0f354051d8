package trajectory

import (
	"math/rand"
	"reflect"
	"testing"
)

func withStatus(codes ...float64) *Trajectory {
	tr := &Trajectory{Name: "T"}
	for _, c := range codes {
		tr.Samples = append(tr.Samples, Sample{Status: c})
	}
	return tr
}

func TestChangesRoundTripScenario(t *testing.T) {
	tr, err := LoadFile("testdata/A.csv")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := Changes(tr, FieldStatus); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("status changes: expected [1], got %v", got)
	}
	if got := Changes(tr, FieldHeading); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("heading changes: expected [1], got %v", got)
	}
	tt := Transitions(tr, FieldStatus)
	if len(tt) != 1 || tt[0] != (Transition{Index: 1, From: 1, To: 2}) {
		t.Fatalf("unexpected transitions %+v", tt)
	}
}

func TestChangesShortTrajectories(t *testing.T) {
	for _, tr := range []*Trajectory{withStatus(), withStatus(3)} {
		if got := Changes(tr, FieldStatus); len(got) != 0 {
			t.Fatalf("expected no changes for length %d, got %v", tr.Len(), got)
		}
	}
}

func TestChangesConstant(t *testing.T) {
	if got := Changes(withStatus(2, 2, 2, 2, 2), FieldStatus); len(got) != 0 {
		t.Fatalf("expected no changes, got %v", got)
	}
}

func TestChangesAlternating(t *testing.T) {
	tr := withStatus(0, 1, 0, 1, 0, 1)
	want := []int{0, 1, 2, 3, 4}
	if got := Changes(tr, FieldStatus); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestChangesExactEquality(t *testing.T) {
	tr := &Trajectory{Samples: []Sample{{Heading: 0.1}, {Heading: 0.1 + 1e-12}, {Heading: 0.1 + 1e-12}}}
	if got := Changes(tr, FieldHeading); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("expected [0], got %v", got)
	}
}

func TestChangesFieldsIndependent(t *testing.T) {
	tr := &Trajectory{Samples: []Sample{
		{Heading: 10, Status: 0},
		{Heading: 20, Status: 0},
		{Heading: 20, Status: 1},
	}}
	if got := Changes(tr, FieldStatus); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("status: expected [1], got %v", got)
	}
	if got := Changes(tr, FieldHeading); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("heading: expected [0], got %v", got)
	}
}

func TestChangesBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 200; n++ {
		codes := make([]float64, rng.Intn(40))
		for i := range codes {
			codes[i] = float64(rng.Intn(3))
		}
		tr := withStatus(codes...)
		got := Changes(tr, FieldStatus)
		if len(codes) > 0 && len(got) > len(codes)-1 {
			t.Fatalf("too many changes: %d for length %d", len(got), len(codes))
		}
		for k, i := range got {
			if i < 0 || i > len(codes)-2 {
				t.Fatalf("index %d out of range for length %d", i, len(codes))
			}
			if k > 0 && got[k-1] >= i {
				t.Fatalf("indices not strictly increasing: %v", got)
			}
			if codes[i] == codes[i+1] {
				t.Fatalf("index %d flagged without a change", i)
			}
		}
	}
}

func TestStatusName(t *testing.T) {
	cases := map[float64]string{
		0:   "Approaching",
		4:   "Descending",
		7:   "Crashed",
		9:   "9",
		2.5: "2.5",
	}
	for code, want := range cases {
		if got := StatusName(code); got != want {
			t.Fatalf("StatusName(%v): expected %s, got %s", code, want, got)
		}
	}
}

func TestFieldString(t *testing.T) {
	if FieldStatus.String() != "status" || FieldHeading.String() != "heading" {
		t.Fatalf("unexpected field names")
	}
}
