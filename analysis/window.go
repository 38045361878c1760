package analysis

import (
	"math"

	"github.com/PrakyathPNayak/biocat"
	"github.com/mingzhi/gomath/stat/correlation"
	"github.com/mingzhi/gomath/stat/desc/meanvar"
	"github.com/mingzhi/gomath/stat/regression"
)

// Signal is a positional signal produced by sliding a window over a
// sequence: one (position, value) pair per window.
type Signal struct {
	Positions []int
	Values    []float64
}

func (s *Signal) Len() int {
	return len(s.Values)
}

// Summary returns the mean and variance of the signal values.
func (s *Signal) Summary() (mean, variance float64, n int) {
	mv := meanvar.New()
	for _, v := range s.Values {
		mv.Increment(v)
	}
	return mv.Mean.GetResult(), mv.Var.GetResult(), mv.Mean.GetN()
}

// Trend fits a straight line through the signal.
func (s *Signal) Trend() (slope, intercept, rsquare float64) {
	simple := regression.NewSimple()
	for i := range s.Values {
		simple.Add(float64(s.Positions[i]), s.Values[i])
	}
	return simple.Slope(), simple.Intercept(), simple.RSquare()
}

// GCContentWindow slides a window across a DNA sequence and reports GC% per
// window, positioned at the window midpoint. A window <= 0 defaults to 100,
// a step <= 0 to a quarter window. Windows start every step bases while
// they still fit.
func GCContentWindow(seq string, window, step int) (*Signal, error) {
	if window <= 0 {
		window = 100
	}
	seq = biocat.Clean(seq, biocat.DNA)
	if len(seq) == 0 {
		return nil, biocat.ErrEmptyInput
	}
	if len(seq) < window {
		return nil, biocat.ErrInputTooShort
	}
	if step <= 0 {
		step = window / 4
		if step == 0 {
			step = 1
		}
	}

	sig := &Signal{}
	for i := 0; i+window <= len(seq); i += step {
		gc := 0
		for j := i; j < i+window; j++ {
			if seq[j] == 'G' || seq[j] == 'C' {
				gc++
			}
		}
		sig.Positions = append(sig.Positions, i+window/2)
		sig.Values = append(sig.Values, 100*float64(gc)/float64(window))
	}
	return sig, nil
}

// kyteDoolittle is the Kyte-Doolittle hydropathy scale.
var kyteDoolittle = map[byte]float64{
	'A': 1.8, 'R': -4.5, 'N': -3.5, 'D': -3.5, 'C': 2.5,
	'Q': -3.5, 'E': -3.5, 'G': -0.4, 'H': -3.2, 'I': 4.5,
	'L': 3.8, 'K': -3.9, 'M': 1.9, 'F': 2.8, 'P': -1.6,
	'S': -0.8, 'T': -0.7, 'W': -0.9, 'Y': -1.3, 'V': 4.2,
}

// HydrophobicityProfile computes the mean Kyte-Doolittle hydropathy over a
// sliding window, one window per start index. Positions are 1-based window
// centers. Unknown residues contribute 0. A window <= 0 defaults to 9.
func HydrophobicityProfile(seq string, window int) (*Signal, error) {
	if window <= 0 {
		window = 9
	}
	seq = biocat.Clean(seq, biocat.Protein)
	if len(seq) == 0 {
		return nil, biocat.ErrEmptyInput
	}
	if len(seq) < window {
		return nil, biocat.ErrInputTooShort
	}

	sig := &Signal{}
	for i := 0; i+window <= len(seq); i++ {
		sum := 0.0
		for j := i; j < i+window; j++ {
			sum += kyteDoolittle[seq[j]]
		}
		sig.Positions = append(sig.Positions, i+window/2+1)
		sig.Values = append(sig.Values, sum/float64(window))
	}
	return sig, nil
}

// Correlation measures how two signals co-vary, normalized to [-1, 1].
// The longer signal is truncated to the shorter one.
func Correlation(a, b *Signal) (float64, error) {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	if n < 2 {
		return 0, biocat.ErrInputTooShort
	}

	cov := correlation.NewBivariateCovariance(true)
	va := meanvar.New()
	vb := meanvar.New()
	for i := 0; i < n; i++ {
		cov.Increment(a.Values[i], b.Values[i])
		va.Increment(a.Values[i])
		vb.Increment(b.Values[i])
	}

	sa, sb := va.Var.GetResult(), vb.Var.GetResult()
	if sa == 0 || sb == 0 {
		return 0, nil
	}
	return cov.GetResult() / math.Sqrt(sa*sb), nil
}
