package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/mingzhi/gomath/stat/desc/meanvar"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/PrakyathPNayak/biocat/analysis"
)

// Command to analyze a random sample of sequences: aggregate composition,
// GC trend and a position weight matrix over the sample.
type cmdSample struct {
	cmdConfig // embed config parser.

	table  *string
	column *string
	count  *int
	window *int
	out    *string
}

func (cmd *cmdSample) Flags(fs *flag.FlagSet) *flag.FlagSet {
	fs = cmd.cmdConfig.Flags(fs)
	cmd.table = fs.String("t", "", "source table (default: first discovered)")
	cmd.column = fs.String("col", "", "source column (default: first discovered)")
	cmd.count = fs.Int("n", 10, "sample size")
	cmd.window = fs.Int("w", 100, "GC content window size")
	cmd.out = fs.String("o", "", "write mean GC signal plot to this file")
	return fs
}

func (cmd *cmdSample) Run(args []string) {
	cmd.ParseConfig()
	h := cmd.connect()
	defer h.Close()

	table, column := resolveSource(h, *cmd.table, *cmd.column)
	seqs, err := h.RandomSequences(table, column, *cmd.count)
	if err != nil {
		ERROR.Fatalf("sampling %s.%s failed: %v", table, column, err)
	}
	if len(seqs) == 0 {
		fmt.Printf("No sequences to sample in %s.%s\n", table, column)
		return
	}

	gc := meanvar.New()
	length := meanvar.New()
	classes := make(map[string]int)
	var longest string

	bar := pb.StartNew(len(seqs))
	for _, seq := range seqs {
		comp := analysis.NucleotideComposition(seq)
		gc.Increment(comp.GCContent)
		length.Increment(float64(comp.Length))
		classes[analysis.Classify(seq)]++
		if len(seq) > len(longest) {
			longest = seq
		}
		bar.Increment()
	}
	bar.Finish()

	fmt.Printf("Sampled %d sequences from %s.%s\n", len(seqs), table, column)
	fmt.Printf("  mean length: %.1f (var %.1f)\n",
		length.Mean.GetResult(), length.Var.GetResult())
	fmt.Printf("  mean GC%%:    %.2f (var %.2f)\n",
		gc.Mean.GetResult(), gc.Var.GetResult())

	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-24s %d\n", name, classes[name])
	}

	pwm, err := analysis.PositionWeightMatrix(seqs)
	if err == nil {
		fmt.Printf("  PWM over %d columns\n", pwm.Columns)
	}

	signal, err := analysis.GCContentWindow(longest, *cmd.window, 0)
	if err != nil {
		WARN.Printf("GC signal of longest sequence: %v", err)
		return
	}
	slope, intercept, rsquare := signal.Trend()
	fmt.Printf("  longest sequence GC trend: slope=%.4g intercept=%.2f r2=%.3f\n",
		slope, intercept, rsquare)
	if *cmd.out != "" {
		savePlot(signal, "GC content", "GC%", *cmd.out)
	}
}
