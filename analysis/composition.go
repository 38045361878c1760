package analysis

import (
	"github.com/PrakyathPNayak/biocat"
)

// Composition holds per-symbol percentages of a sequence.
type Composition struct {
	Percent map[byte]float64
	// GCContent is only meaningful for nucleotide sequences.
	GCContent float64
	// StopCodons counts '*' symbols, which are excluded from the
	// percentage base of protein compositions.
	StopCodons int
	Length     int
}

var nucleotides = []byte("ATGCN")

var residues = []byte("ACDEFGHIKLMNPQRSTVWY")

// NucleotideComposition computes the percentage of each DNA symbol.
// All values are zero for an empty sequence.
func NucleotideComposition(seq string) Composition {
	seq = biocat.Clean(seq, biocat.DNA)
	c := Composition{Percent: make(map[byte]float64, len(nucleotides)), Length: len(seq)}

	counts := countSymbols(seq)
	for _, nt := range nucleotides {
		c.Percent[nt] = percent(counts[nt], len(seq))
	}
	c.GCContent = percent(counts['G']+counts['C'], len(seq))
	return c
}

// AminoAcidComposition computes the percentage of each standard residue.
// Stop symbols are tracked separately and do not enter the percentage base.
func AminoAcidComposition(seq string) Composition {
	seq = biocat.Clean(seq, biocat.Protein)
	counts := countSymbols(seq)
	base := len(seq) - counts['*']

	c := Composition{Percent: make(map[byte]float64, len(residues)), Length: len(seq)}
	c.StopCodons = counts['*']
	for _, aa := range residues {
		c.Percent[aa] = percent(counts[aa], base)
	}
	return c
}

func countSymbols(seq string) map[byte]int {
	counts := make(map[byte]int)
	for i := 0; i < len(seq); i++ {
		counts[seq[i]]++
	}
	return counts
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(count) / float64(total)
}
