package analysis

import (
	"math"
	"testing"
)

func TestNucleotideComposition(t *testing.T) {
	c := NucleotideComposition("ATGCATGC")
	for _, nt := range []byte("ATGC") {
		if got := c.Percent[nt]; math.Abs(got-25) > 1e-9 {
			t.Errorf("percent(%c) = %f, want 25", nt, got)
		}
	}
	if math.Abs(c.GCContent-50) > 1e-9 {
		t.Errorf("GCContent = %f, want 50", c.GCContent)
	}
}

func TestNucleotideCompositionSumsTo100(t *testing.T) {
	seqs := []string{"A", "ATGCN", "GGGGCCCC", "ATATATATN", "acgtacgtNNNN"}
	for _, s := range seqs {
		c := NucleotideComposition(s)
		sum := 0.0
		for _, nt := range nucleotides {
			sum += c.Percent[nt]
		}
		if math.Abs(sum-100) > 1e-9 {
			t.Errorf("composition of %q sums to %f, want 100", s, sum)
		}
	}
}

func TestNucleotideCompositionEmpty(t *testing.T) {
	c := NucleotideComposition("xyz 123")
	for _, nt := range nucleotides {
		if c.Percent[nt] != 0 {
			t.Errorf("percent(%c) = %f, want 0 for empty input", nt, c.Percent[nt])
		}
	}
	if c.GCContent != 0 {
		t.Errorf("GCContent = %f, want 0", c.GCContent)
	}
}

func TestAminoAcidComposition(t *testing.T) {
	c := AminoAcidComposition("MKVL*")
	if c.StopCodons != 1 {
		t.Errorf("StopCodons = %d, want 1", c.StopCodons)
	}
	// Stop symbols are excluded from the base: 4 residues at 25% each.
	for _, aa := range []byte("MKVL") {
		if math.Abs(c.Percent[aa]-25) > 1e-9 {
			t.Errorf("percent(%c) = %f, want 25", aa, c.Percent[aa])
		}
	}
	sum := 0.0
	for _, aa := range residues {
		sum += c.Percent[aa]
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("residue percentages sum to %f, want 100", sum)
	}
}
