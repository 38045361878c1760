package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/PrakyathPNayak/biocat/analysis"
)

// Command to report the biophysical properties of one protein, fetched by
// stable id or passed as a raw chain.
type cmdProtein struct {
	cmdConfig // embed config parser.

	id    *string
	seq   *string
	quick *bool
	out   *string
}

func (cmd *cmdProtein) Flags(fs *flag.FlagSet) *flag.FlagSet {
	fs = cmd.cmdConfig.Flags(fs)
	cmd.id = fs.String("id", "", "protein stable id to fetch")
	cmd.seq = fs.String("s", "", "raw protein chain (skips the database)")
	cmd.quick = fs.Bool("quick", false, "count-based model only")
	cmd.out = fs.String("o", "", "write hydrophobicity profile plot to this file")
	return fs
}

func (cmd *cmdProtein) Run(args []string) {
	cmd.ParseConfig()

	chain := *cmd.seq
	if chain == "" {
		if *cmd.id == "" {
			ERROR.Fatalf("need -id or -s")
		}
		h := cmd.connect()
		defer h.Close()
		var err error
		chain, err = h.ProteinSequence(*cmd.id)
		if err != nil {
			ERROR.Fatalf("cannot fetch protein %s: %v", *cmd.id, err)
		}
	}

	var model analysis.PropertyModel = analysis.ProtParam{}
	if *cmd.quick {
		model = analysis.CountModel{}
	}
	bag, err := model.Analyze(chain)
	if err != nil {
		ERROR.Fatalf("analysis failed: %v", err)
	}

	fmt.Printf("Protein (%d residues)\n", bag.Length)
	printProperty(bag, analysis.PropMolecularWeight, "molecular weight", "%.1f Da", bag.MolecularWeight)
	printProperty(bag, analysis.PropIsoelectricPoint, "isoelectric point", "%.2f", bag.IsoelectricPoint)
	printProperty(bag, analysis.PropInstabilityIndex, "instability index", "%.1f", bag.InstabilityIndex)
	printProperty(bag, analysis.PropFlexibility, "mean flexibility", "%.4f", bag.Flexibility)
	printProperty(bag, analysis.PropHydrophobicity, "mean hydrophobicity", "%.3f", bag.Hydrophobicity)
	if len(bag.Unavailable) > 0 {
		fmt.Printf("  unavailable: %v\n", bag.Unavailable)
	}

	fmt.Printf("  composition (%%):\n")
	symbols := make([]int, 0, len(bag.Composition.Percent))
	for c := range bag.Composition.Percent {
		symbols = append(symbols, int(c))
	}
	sort.Ints(symbols)
	for _, c := range symbols {
		if p := bag.Composition.Percent[byte(c)]; p > 0 {
			fmt.Printf("    %c %6.2f\n", byte(c), p)
		}
	}

	if *cmd.out != "" {
		signal, err := analysis.HydrophobicityProfile(chain, 0)
		if err != nil {
			WARN.Printf("hydrophobicity profile: %v", err)
			return
		}
		savePlot(signal, "Kyte-Doolittle hydrophobicity", "score", *cmd.out)
	}
}

func printProperty(bag *analysis.PropertyBag, name, label, format string, value float64) {
	if !bag.Available(name) {
		return
	}
	fmt.Printf("  %-20s "+format+"\n", label+":", value)
}
