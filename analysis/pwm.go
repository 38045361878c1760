package analysis

import (
	"github.com/PrakyathPNayak/biocat"
)

// PWM is a position weight matrix: per-column symbol frequencies over a set
// of aligned sequences.
type PWM struct {
	Symbols []byte
	// Freqs[symbol][column]
	Freqs map[byte][]float64
	// Columns is the alignment length, taken from the first sequence.
	Columns int
}

// Freq returns the frequency of a symbol at a column.
func (m *PWM) Freq(symbol byte, column int) float64 {
	row, ok := m.Freqs[symbol]
	if !ok || column >= len(row) {
		return 0
	}
	return row[column]
}

// PositionWeightMatrix builds a PWM over the DNA alphabet. The first sequence sets
// the number of columns; shorter sequences simply do not contribute to the
// trailing columns, and each column is normalized by the number of
// sequences long enough to cover it.
func PositionWeightMatrix(seqs []string) (*PWM, error) {
	cleaned := make([]string, 0, len(seqs))
	for _, s := range seqs {
		cleaned = append(cleaned, biocat.Clean(s, biocat.DNA))
	}
	if len(cleaned) == 0 || len(cleaned[0]) == 0 {
		return nil, biocat.ErrNoData
	}

	symbols := []byte("ATGCN")
	m := &PWM{
		Symbols: symbols,
		Freqs:   make(map[byte][]float64, len(symbols)),
		Columns: len(cleaned[0]),
	}
	for _, sym := range symbols {
		m.Freqs[sym] = make([]float64, m.Columns)
	}

	for p := 0; p < m.Columns; p++ {
		covering := 0
		counts := make(map[byte]int, len(symbols))
		for _, s := range cleaned {
			if p < len(s) {
				covering++
				counts[s[p]]++
			}
		}
		if covering == 0 {
			continue
		}
		for _, sym := range symbols {
			m.Freqs[sym][p] = float64(counts[sym]) / float64(covering)
		}
	}
	return m, nil
}
