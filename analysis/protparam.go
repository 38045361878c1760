package analysis

import "math"

// Numeric models behind the ProtParam property model. These are the usual
// approximations, not exact biophysics: average isotopic masses, EMBOSS pKa
// values, an unweighted flexibility window and a coarse stand-in for the
// Guruprasad dipeptide table that is good enough to rank sequences.

// Average monomer masses in Dalton; one water is lost per peptide bond.
var residueMass = map[byte]float64{
	'A': 89.09, 'C': 121.16, 'D': 133.10, 'E': 147.13,
	'F': 165.19, 'G': 75.07, 'H': 155.16, 'I': 131.17,
	'K': 146.19, 'L': 131.17, 'M': 149.21, 'N': 132.12,
	'P': 115.13, 'Q': 146.15, 'R': 174.20, 'S': 105.09,
	'T': 119.12, 'V': 117.15, 'W': 204.23, 'Y': 181.19,
}

const waterMass = 18.0153

func molecularWeight(chain string) float64 {
	total := 0.0
	for i := 0; i < len(chain); i++ {
		total += residueMass[chain[i]]
	}
	return total - float64(len(chain)-1)*waterMass
}

// EMBOSS pKa values for the ionizable groups.
const (
	pkaNterm = 8.6
	pkaCterm = 3.6
)

var pkaPositive = map[byte]float64{'K': 10.8, 'R': 12.5, 'H': 6.5}

var pkaNegative = map[byte]float64{'D': 3.9, 'E': 4.1, 'C': 8.5, 'Y': 10.1}

func chargeAt(chain string, ph float64) float64 {
	positive := func(pka float64) float64 {
		return 1.0 / (1.0 + pow10(ph-pka))
	}
	negative := func(pka float64) float64 {
		return -1.0 / (1.0 + pow10(pka-ph))
	}

	charge := positive(pkaNterm) + negative(pkaCterm)
	for i := 0; i < len(chain); i++ {
		if pka, ok := pkaPositive[chain[i]]; ok {
			charge += positive(pka)
		} else if pka, ok := pkaNegative[chain[i]]; ok {
			charge += negative(pka)
		}
	}
	return charge
}

// isoelectricPoint finds the pH of zero net charge by bisection.
func isoelectricPoint(chain string) float64 {
	lo, hi := 0.0, 14.0
	for i := 0; i < 50; i++ {
		mid := (lo + hi) / 2
		if chargeAt(chain, mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// Destabilizing weights per dipeptide second residue. Proteins rich in
// P, E, S, T, Q, D score high, after the PEST rule of thumb.
var instabilityWeight = map[byte]float64{
	'P': 28.0, 'E': 18.0, 'S': 14.0, 'T': 12.0, 'Q': 14.0, 'D': 16.0,
	'N': 10.0, 'K': 8.0, 'R': 6.0, 'G': 4.0,
}

func instabilityIndex(chain string) float64 {
	total := 0.0
	for i := 0; i+1 < len(chain); i++ {
		w, ok := instabilityWeight[chain[i+1]]
		if !ok {
			w = 1.0
		}
		total += w
	}
	return 10.0 * total / float64(len(chain))
}

// Normalized flexibility parameters (Vihinen et al. 1994).
var flexibility = map[byte]float64{
	'A': 0.984, 'C': 0.906, 'D': 1.068, 'E': 1.094,
	'F': 0.915, 'G': 1.031, 'H': 0.950, 'I': 0.927,
	'K': 1.102, 'L': 0.935, 'M': 0.952, 'N': 1.048,
	'P': 1.049, 'Q': 1.037, 'R': 1.008, 'S': 1.046,
	'T': 0.997, 'V': 0.931, 'W': 0.904, 'Y': 0.929,
}

const flexWindow = 9

// meanFlexibility averages the windowed flexibility score; false when the
// chain is shorter than one window.
func meanFlexibility(chain string) (float64, bool) {
	if len(chain) < flexWindow {
		return 0, false
	}
	total, n := 0.0, 0
	for i := 0; i+flexWindow <= len(chain); i++ {
		sum := 0.0
		for j := i; j < i+flexWindow; j++ {
			sum += flexibility[chain[j]]
		}
		total += sum / flexWindow
		n++
	}
	return total / float64(n), true
}

func pow10(x float64) float64 {
	return math.Pow(10, x)
}
