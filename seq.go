package biocat

import (
	"errors"
	"strings"
)

var (
	ErrEmptyInput     = errors.New("biocat: no valid data after cleaning")
	ErrInputTooShort  = errors.New("biocat: sequence too short")
	ErrInvalidPattern = errors.New("biocat: pattern needs at least 3 valid bases")
	ErrNoData         = errors.New("biocat: no data")
)

// Alphabet is the closed set of symbols a sequence kind may contain.
type Alphabet struct {
	Name    string
	symbols [256]bool
}

func NewAlphabet(name, symbols string) Alphabet {
	a := Alphabet{Name: name}
	for i := 0; i < len(symbols); i++ {
		a.symbols[symbols[i]] = true
	}
	return a
}

func (a *Alphabet) Contains(c byte) bool {
	return a.symbols[c]
}

func (a *Alphabet) String() string {
	return a.Name
}

var (
	// DNA includes N for unresolved bases.
	DNA = NewAlphabet("DNA", "ATGCN")
	// StrictDNA is for patterns and helix rendering, where N has no pair.
	StrictDNA = NewAlphabet("DNA (strict)", "ATGC")
	// Protein covers the 20 standard residues plus the stop symbol.
	Protein = NewAlphabet("protein", "ACDEFGHIKLMNPQRSTVWY*")
)

// Clean upper-cases raw, strips whitespace and drops every byte outside the
// alphabet. It never fails; an input with no valid symbols comes back empty.
func Clean(raw string, a Alphabet) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if a.Contains(c) {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// CleanPattern prepares a search pattern: strict DNA cleaning plus the
// minimum-length rule for pattern searches.
func CleanPattern(raw string) (string, error) {
	p := Clean(raw, StrictDNA)
	if len(p) < 3 {
		return "", ErrInvalidPattern
	}
	return p, nil
}

// Complement returns the Watson-Crick partner of a base, or 'N' for
// anything unpaired.
func Complement(base byte) byte {
	switch base {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'G':
		return 'C'
	case 'C':
		return 'G'
	}
	return 'N'
}

func ReverseComplement(nts []byte) []byte {
	ret := make([]byte, len(nts))
	for i := 0; i < len(nts); i++ {
		ret[len(nts)-i-1] = Complement(nts[i])
	}
	return ret
}
