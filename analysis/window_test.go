package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/PrakyathPNayak/biocat"
)

func TestGCContentWindowCount(t *testing.T) {
	tests := []struct {
		length, window, step int
	}{
		{100, 20, 0}, // default step = window/4
		{100, 100, 0},
		{50, 10, 5},
		{33, 9, 2},
	}
	for _, tt := range tests {
		seq := strings.Repeat("ATGC", (tt.length+3)/4)[:tt.length]
		sig, err := GCContentWindow(seq, tt.window, tt.step)
		if err != nil {
			t.Fatalf("GCContentWindow(L=%d, W=%d): %v", tt.length, tt.window, err)
		}
		step := tt.step
		if step <= 0 {
			step = tt.window / 4
		}
		want := (tt.length-tt.window)/step + 1
		if sig.Len() != want {
			t.Errorf("L=%d W=%d step=%d: %d windows, want %d",
				tt.length, tt.window, step, sig.Len(), want)
		}
	}
}

func TestGCContentWindowValues(t *testing.T) {
	// Uniform 50% GC everywhere.
	sig, err := GCContentWindow(strings.Repeat("ATGC", 25), 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range sig.Values {
		if math.Abs(v-50) > 1e-9 {
			t.Errorf("window %d: GC = %f, want 50", i, v)
		}
	}
	if sig.Positions[0] != 10 {
		t.Errorf("first midpoint = %d, want 10", sig.Positions[0])
	}
}

func TestGCContentWindowTooShort(t *testing.T) {
	if _, err := GCContentWindow("ATGC", 100, 0); err != biocat.ErrInputTooShort {
		t.Errorf("got %v, want ErrInputTooShort", err)
	}
	if _, err := GCContentWindow("", 10, 0); err != biocat.ErrEmptyInput {
		t.Errorf("got %v, want ErrEmptyInput", err)
	}
}

func TestHydrophobicityProfile(t *testing.T) {
	seq := strings.Repeat("AILV", 10) // strongly hydrophobic
	sig, err := HydrophobicityProfile(seq, 9)
	if err != nil {
		t.Fatal(err)
	}
	if want := len(seq) - 9 + 1; sig.Len() != want {
		t.Errorf("%d windows, want %d", sig.Len(), want)
	}
	// Scale bounds: every mean must lie within [min, max] of the table.
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range kyteDoolittle {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	for i, v := range sig.Values {
		if v < lo || v > hi {
			t.Errorf("window %d: value %f outside scale bounds [%f, %f]", i, v, lo, hi)
		}
	}
	if sig.Positions[0] != 5 {
		t.Errorf("first center = %d, want 5", sig.Positions[0])
	}
}

func TestHydrophobicityProfileTooShort(t *testing.T) {
	if _, err := HydrophobicityProfile("MKV", 9); err != biocat.ErrInputTooShort {
		t.Errorf("got %v, want ErrInputTooShort", err)
	}
}

func TestSignalSummaryAndTrend(t *testing.T) {
	sig := &Signal{
		Positions: []int{0, 1, 2, 3, 4},
		Values:    []float64{1, 3, 5, 7, 9},
	}
	mean, _, n := sig.Summary()
	if n != 5 || math.Abs(mean-5) > 1e-9 {
		t.Errorf("Summary = (%f, n=%d), want mean 5 over 5", mean, n)
	}
	slope, intercept, rsquare := sig.Trend()
	if math.Abs(slope-2) > 1e-9 || math.Abs(intercept-1) > 1e-9 {
		t.Errorf("Trend = (%f, %f), want (2, 1)", slope, intercept)
	}
	if math.Abs(rsquare-1) > 1e-9 {
		t.Errorf("RSquare = %f, want 1 on a perfect line", rsquare)
	}
}

func TestCorrelation(t *testing.T) {
	a := &Signal{Positions: []int{0, 1, 2, 3}, Values: []float64{1, 2, 3, 4}}
	r, err := Correlation(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r-1) > 1e-9 {
		t.Errorf("self correlation = %f, want 1", r)
	}

	b := &Signal{Positions: []int{0, 1, 2, 3}, Values: []float64{4, 3, 2, 1}}
	r, err = Correlation(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r+1) > 1e-9 {
		t.Errorf("anti correlation = %f, want -1", r)
	}

	short := &Signal{Positions: []int{0}, Values: []float64{1}}
	if _, err := Correlation(a, short); err != biocat.ErrInputTooShort {
		t.Errorf("got %v, want ErrInputTooShort", err)
	}
}
