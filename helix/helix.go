// Package helix synthesizes 3D coordinates for a double-helix rendering of
// a DNA sequence. This is a visualization approximation, not a structural
// model: the only physical constant kept is the 0.34 rise per base.
package helix

import (
	"math"

	"github.com/PrakyathPNayak/biocat"
)

// DefaultMaxLength caps the number of bases rendered.
const DefaultMaxLength = 50

// rise per base along the axis, in length units.
const rise = 0.34

// Point is a 3D coordinate.
type Point struct {
	X, Y, Z float64
}

// Bond links corresponding positions on both strands, one per base pair.
type Bond struct {
	From, To Point
}

// Model holds one rendered double helix: equal-length strands, per-position
// base labels and the hydrogen-bond edges between them.
type Model struct {
	Strand1, Strand2 []Point
	Bases            []byte // strand 1 labels
	Complements      []byte // strand 2 labels
	Bonds            []Bond
}

func (m *Model) Len() int {
	return len(m.Strand1)
}

// Build cleans seq to strict DNA, truncates it to maxLength (DefaultMaxLength
// when <= 0) and parametrizes the two strands. The second strand mirrors the
// first through the axis at the same height.
func Build(seq string, maxLength int) (*Model, error) {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	seq = biocat.Clean(seq, biocat.StrictDNA)
	if len(seq) == 0 {
		return nil, biocat.ErrEmptyInput
	}
	if len(seq) > maxLength {
		seq = seq[:maxLength]
	}

	n := len(seq)
	m := &Model{
		Strand1:     make([]Point, n),
		Strand2:     make([]Point, n),
		Bases:       make([]byte, n),
		Complements: make([]byte, n),
		Bonds:       make([]Bond, n),
	}
	for i := 0; i < n; i++ {
		t := float64(i) * 4 * math.Pi * float64(n) / (10 * float64(n))
		z := float64(i) * rise
		p1 := Point{math.Cos(t), math.Sin(t), z}
		p2 := Point{-math.Cos(t), -math.Sin(t), z}

		m.Strand1[i] = p1
		m.Strand2[i] = p2
		m.Bases[i] = seq[i]
		m.Complements[i] = biocat.Complement(seq[i])
		m.Bonds[i] = Bond{From: p1, To: p2}
	}
	return m, nil
}
