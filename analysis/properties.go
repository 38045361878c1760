package analysis

import (
	"strings"

	"github.com/PrakyathPNayak/biocat"
)

// Property names reported in PropertyBag.Unavailable.
const (
	PropMolecularWeight  = "molecular_weight"
	PropIsoelectricPoint = "isoelectric_point"
	PropInstabilityIndex = "instability_index"
	PropFlexibility      = "flexibility"
	PropHydrophobicity   = "hydrophobicity"
)

// PropertyBag collects the biophysical properties of one protein sequence.
// A property missing from the bag is listed by name in Unavailable; one
// failed property never suppresses the others.
type PropertyBag struct {
	Length           int
	MolecularWeight  float64
	IsoelectricPoint float64
	InstabilityIndex float64
	Flexibility      float64
	Hydrophobicity   float64
	Composition      Composition
	Unavailable      []string
}

func (b *PropertyBag) markUnavailable(name string) {
	b.Unavailable = append(b.Unavailable, name)
}

// Available reports whether a named property was computed.
func (b *PropertyBag) Available(name string) bool {
	for _, u := range b.Unavailable {
		if u == name {
			return false
		}
	}
	return true
}

// PropertyModel computes protein properties. Two implementations exist: the
// full biophysical model and a counting fallback. Pick one at composition
// time; both honor the same contract.
type PropertyModel interface {
	Analyze(seq string) (*PropertyBag, error)
}

// ProtParam is the full property model, after the classic Expasy
// calculations: average residue masses, pKa-based isoelectric point,
// the Guruprasad dipeptide instability index and Vihinen flexibility.
type ProtParam struct{}

func (ProtParam) Analyze(seq string) (*PropertyBag, error) {
	seq = biocat.Clean(seq, biocat.Protein)
	if len(seq) == 0 {
		return nil, biocat.ErrEmptyInput
	}
	bag := &PropertyBag{Length: len(seq), Composition: AminoAcidComposition(seq)}

	// The stop symbol is valid in the alphabet but has no physical
	// parameters; strip it for the numeric models.
	chain := strings.ReplaceAll(seq, "*", "")
	if len(chain) == 0 {
		bag.markUnavailable(PropMolecularWeight)
		bag.markUnavailable(PropIsoelectricPoint)
		bag.markUnavailable(PropInstabilityIndex)
		bag.markUnavailable(PropFlexibility)
		bag.markUnavailable(PropHydrophobicity)
		return bag, nil
	}

	bag.MolecularWeight = molecularWeight(chain)
	bag.IsoelectricPoint = isoelectricPoint(chain)

	if len(chain) >= 2 {
		bag.InstabilityIndex = instabilityIndex(chain)
	} else {
		bag.markUnavailable(PropInstabilityIndex)
	}

	if flex, ok := meanFlexibility(chain); ok {
		bag.Flexibility = flex
	} else {
		bag.markUnavailable(PropFlexibility)
	}

	fillHydrophobicity(bag, chain)
	return bag, nil
}

// CountModel is the degraded fallback used when the rich model is not
// wanted: composition and windowed hydrophobicity only.
type CountModel struct{}

func (CountModel) Analyze(seq string) (*PropertyBag, error) {
	seq = biocat.Clean(seq, biocat.Protein)
	if len(seq) == 0 {
		return nil, biocat.ErrEmptyInput
	}
	bag := &PropertyBag{Length: len(seq), Composition: AminoAcidComposition(seq)}
	bag.markUnavailable(PropMolecularWeight)
	bag.markUnavailable(PropIsoelectricPoint)
	bag.markUnavailable(PropInstabilityIndex)
	bag.markUnavailable(PropFlexibility)
	fillHydrophobicity(bag, strings.ReplaceAll(seq, "*", ""))
	return bag, nil
}

func fillHydrophobicity(bag *PropertyBag, chain string) {
	if len(chain) < 9 {
		bag.markUnavailable(PropHydrophobicity)
		return
	}
	sig, err := HydrophobicityProfile(chain, 9)
	if err != nil {
		bag.markUnavailable(PropHydrophobicity)
		return
	}
	mean, _, _ := sig.Summary()
	bag.Hydrophobicity = mean
}
