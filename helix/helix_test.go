package helix

import (
	"math"
	"strings"
	"testing"

	"github.com/PrakyathPNayak/biocat"
)

func TestBuild(t *testing.T) {
	m, err := Build("ATGC", 10)
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 4 || len(m.Strand2) != 4 {
		t.Fatalf("strand lengths = (%d, %d), want (4, 4)", m.Len(), len(m.Strand2))
	}
	if m.Bases[0] != 'A' || m.Complements[0] != 'T' {
		t.Errorf("position 0 = %c/%c, want A/T", m.Bases[0], m.Complements[0])
	}
	if m.Bases[2] != 'G' || m.Complements[2] != 'C' {
		t.Errorf("position 2 = %c/%c, want G/C", m.Bases[2], m.Complements[2])
	}
}

func TestBuildGeometry(t *testing.T) {
	m, err := Build("ATGCATGC", 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := range m.Strand1 {
		p1, p2 := m.Strand1[i], m.Strand2[i]
		// Same rise on both strands.
		if p1.Z != p2.Z {
			t.Errorf("position %d: z mismatch %f != %f", i, p1.Z, p2.Z)
		}
		if want := float64(i) * rise; math.Abs(p1.Z-want) > 1e-9 {
			t.Errorf("position %d: z = %f, want %f", i, p1.Z, want)
		}
		// Strand 2 mirrors strand 1 through the axis.
		if math.Abs(p1.X+p2.X) > 1e-9 || math.Abs(p1.Y+p2.Y) > 1e-9 {
			t.Errorf("position %d: strand 2 not mirrored", i)
		}
		// Backbone stays on the unit cylinder.
		if r := math.Hypot(p1.X, p1.Y); math.Abs(r-1) > 1e-9 {
			t.Errorf("position %d: radius = %f, want 1", i, r)
		}
	}
	if len(m.Bonds) != m.Len() {
		t.Errorf("%d bonds for %d positions", len(m.Bonds), m.Len())
	}
}

func TestBuildTruncates(t *testing.T) {
	m, err := Build(strings.Repeat("ATGC", 40), 50)
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 50 {
		t.Errorf("length = %d, want cap 50", m.Len())
	}
}

func TestBuildCleansInput(t *testing.T) {
	// N has no complement partner and is dropped before rendering.
	m, err := Build("atn gc", 10)
	if err != nil {
		t.Fatal(err)
	}
	if string(m.Bases) != "ATGC" {
		t.Errorf("bases = %s, want ATGC", m.Bases)
	}
}

func TestBuildEmpty(t *testing.T) {
	if _, err := Build("nnn...", 10); err != biocat.ErrEmptyInput {
		t.Errorf("got %v, want ErrEmptyInput", err)
	}
}
