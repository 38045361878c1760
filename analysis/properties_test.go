package analysis

import (
	"strings"
	"testing"

	"github.com/PrakyathPNayak/biocat"
)

func TestProtParamAnalyze(t *testing.T) {
	seq := strings.Repeat("MKVLAT", 5)
	bag, err := ProtParam{}.Analyze(seq)
	if err != nil {
		t.Fatal(err)
	}
	if bag.Length != len(seq) {
		t.Errorf("Length = %d, want %d", bag.Length, len(seq))
	}
	if len(bag.Unavailable) != 0 {
		t.Errorf("unexpected unavailable properties: %v", bag.Unavailable)
	}
	// 30 residues: well above one water-loss per bond each ~75 Da minimum.
	if bag.MolecularWeight < 2000 || bag.MolecularWeight > 5000 {
		t.Errorf("MolecularWeight = %f, outside plausible range", bag.MolecularWeight)
	}
	if bag.IsoelectricPoint <= 0 || bag.IsoelectricPoint >= 14 {
		t.Errorf("IsoelectricPoint = %f, outside pH range", bag.IsoelectricPoint)
	}
	if bag.Flexibility < 0.9 || bag.Flexibility > 1.11 {
		t.Errorf("Flexibility = %f, outside scale range", bag.Flexibility)
	}
}

func TestProtParamBasicSequence(t *testing.T) {
	// K is basic: pI must sit in the basic half.
	bag, err := ProtParam{}.Analyze(strings.Repeat("K", 20))
	if err != nil {
		t.Fatal(err)
	}
	if bag.IsoelectricPoint < 7 {
		t.Errorf("poly-K pI = %f, want > 7", bag.IsoelectricPoint)
	}

	// D is acidic.
	bag, err = ProtParam{}.Analyze(strings.Repeat("D", 20))
	if err != nil {
		t.Fatal(err)
	}
	if bag.IsoelectricPoint > 7 {
		t.Errorf("poly-D pI = %f, want < 7", bag.IsoelectricPoint)
	}
}

func TestProtParamShortSequence(t *testing.T) {
	// Too short for flexibility and hydrophobicity windows, but the other
	// properties must still come back.
	bag, err := ProtParam{}.Analyze("MKV")
	if err != nil {
		t.Fatal(err)
	}
	if bag.Available(PropFlexibility) {
		t.Error("flexibility should be unavailable for a 3-residue chain")
	}
	if bag.Available(PropHydrophobicity) {
		t.Error("hydrophobicity should be unavailable for a 3-residue chain")
	}
	if !bag.Available(PropMolecularWeight) || bag.MolecularWeight <= 0 {
		t.Error("molecular weight should survive a short chain")
	}
}

func TestProtParamEmpty(t *testing.T) {
	if _, err := (ProtParam{}).Analyze("123"); err != biocat.ErrEmptyInput {
		t.Errorf("got %v, want ErrEmptyInput", err)
	}
}

func TestCountModelDegrades(t *testing.T) {
	seq := strings.Repeat("MKVLAT", 5)
	bag, err := CountModel{}.Analyze(seq)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{PropMolecularWeight, PropIsoelectricPoint, PropInstabilityIndex, PropFlexibility} {
		if bag.Available(p) {
			t.Errorf("%s should be unavailable under the fallback model", p)
		}
	}
	if !bag.Available(PropHydrophobicity) {
		t.Error("hydrophobicity should be available under the fallback model")
	}
	if bag.Composition.Length == 0 {
		t.Error("composition missing under the fallback model")
	}
}

func TestInstabilityRanksPESTHigher(t *testing.T) {
	pest, err := ProtParam{}.Analyze(strings.Repeat("PESTQ", 6))
	if err != nil {
		t.Fatal(err)
	}
	stable, err := ProtParam{}.Analyze(strings.Repeat("AILVF", 6))
	if err != nil {
		t.Fatal(err)
	}
	if pest.InstabilityIndex <= stable.InstabilityIndex {
		t.Errorf("PEST-rich index %f not above stable index %f",
			pest.InstabilityIndex, stable.InstabilityIndex)
	}
}
