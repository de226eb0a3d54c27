package core

import "testing"

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 1, Max: 10, HasMin: true, HasMax: true}
	if c.Clamp(0) != 1 || c.Clamp(11) != 10 || c.Clamp(5) != 5 {
		t.Fatal("Clamp did not respect bounds")
	}
	open := ParameterControl{}
	if open.Clamp(-100) != -100 {
		t.Fatal("unbounded control should not clamp")
	}
}

func TestSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Params: []Parameter{{Key: "speed_ms", Value: "100"}}}
	if p, ok := s.Lookup("speed_ms"); !ok || p.Value != "100" {
		t.Fatalf("Lookup = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("missing key found")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := make([]CellState, 64)
	b := make([]CellState, 64)
	NewRNG(9).FillBinary(a)
	NewRNG(9).FillBinary(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed produced different cells")
		}
		if a[i] > Alive {
			t.Fatalf("cell %d = %d", i, a[i])
		}
	}
}
