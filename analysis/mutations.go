package analysis

import (
	"fmt"
	"strings"

	"github.com/PrakyathPNayak/biocat"
)

// Classify labels a DNA sequence by start-codon presence, mirroring the
// classifier the database exposes as a stored function.
func Classify(seq string) string {
	seq = biocat.Clean(seq, biocat.DNA)
	switch {
	case len(seq) == 0:
		return "EMPTY"
	case strings.Contains(seq, "ATG"):
		return "CODING (has ATG)"
	default:
		return "NON-CODING"
	}
}

// Mutation is a single point difference between two aligned sequences.
type Mutation struct {
	Pos  int // 1-based
	From byte
	To   byte
}

func (m Mutation) String() string {
	return fmt.Sprintf("%c%d%c", m.From, m.Pos, m.To)
}

// DetectMutations reports the point differences between two sequences over
// their common prefix length. Trailing bases of the longer sequence are
// ignored, as in the database's detect_mutations function.
func DetectMutations(a, b string) []Mutation {
	a = biocat.Clean(a, biocat.DNA)
	b = biocat.Clean(b, biocat.DNA)
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var muts []Mutation
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			muts = append(muts, Mutation{Pos: i + 1, From: a[i], To: b[i]})
		}
	}
	return muts
}
