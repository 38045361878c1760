package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/PrakyathPNayak/biocat"
	"github.com/PrakyathPNayak/biocat/analysis"
	"github.com/PrakyathPNayak/biocat/db"
)

// Command to fetch sequences from one discovered source, with a composition
// summary per sequence.
type cmdFetch struct {
	cmdConfig // embed config parser.

	table  *string
	column *string
	window *int
	out    *string
}

func (cmd *cmdFetch) Flags(fs *flag.FlagSet) *flag.FlagSet {
	fs = cmd.cmdConfig.Flags(fs)
	cmd.table = fs.String("t", "", "source table (default: first discovered)")
	cmd.column = fs.String("col", "", "source column (default: first discovered)")
	cmd.window = fs.Int("w", 100, "GC content window size")
	cmd.out = fs.String("o", "", "write GC signal plot of the longest sequence to this file")
	return fs
}

func (cmd *cmdFetch) Run(args []string) {
	cmd.ParseConfig()
	h := cmd.connect()
	defer h.Close()

	table, column := resolveSource(h, *cmd.table, *cmd.column)
	rows, err := h.FetchSequences(table, column, cmd.limit, cmd.minLength)
	if err != nil {
		ERROR.Fatalf("fetch from %s.%s failed: %v", table, column, err)
	}
	if len(rows) == 0 {
		fmt.Printf("No sequences of length >= %d in %s.%s: %s\n",
			cmd.minLength, table, column, biocat.StatusEmpty)
		return
	}

	fmt.Printf("%d sequences from %s.%s (longest first):\n", len(rows), table, column)
	var longest string
	for _, row := range rows {
		printRow(row)
		seq := fmt.Sprint(row["full_sequence"])
		comp := analysis.NucleotideComposition(seq)
		if comp.Length > 0 {
			fmt.Printf("    GC=%.2f%% A=%.1f T=%.1f G=%.1f C=%.1f %s\n",
				comp.GCContent, comp.Percent['A'], comp.Percent['T'],
				comp.Percent['G'], comp.Percent['C'], analysis.Classify(seq))
		}
		if len(seq) > len(longest) {
			longest = seq
		}
	}

	if *cmd.out != "" {
		signal, err := analysis.GCContentWindow(longest, *cmd.window, 0)
		if err != nil {
			WARN.Printf("GC signal of longest sequence: %v", err)
			return
		}
		savePlot(signal, "GC content", "GC%", *cmd.out)
	}
}

// resolveSource returns the requested (table, column) pair, running
// discovery when either half is missing.
func resolveSource(h *db.Handle, table, column string) (string, string) {
	if table != "" && column != "" {
		return table, column
	}
	d := db.Locate(h)
	if d.TotalSources == 0 {
		ERROR.Fatalf("no sequence data found in this schema")
	}
	keys := make([]string, 0, len(d.Sources))
	for k := range d.Sources {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	src := d.Sources[keys[0]]
	INFO.Printf("using discovered source %s", src.Key())
	return src.Table, src.Column
}

// printRow prints one result row, sequence preview last.
func printRow(row map[string]interface{}) {
	keys := make([]string, 0, len(row))
	for k := range row {
		if k == "full_sequence" || k == "sequence_preview" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s=%v", k, row[k])
	}
	if p, ok := row["sequence_preview"]; ok {
		s := fmt.Sprint(p)
		if len(s) > 60 {
			s = s[:60] + "..."
		}
		fmt.Printf("  seq=%s", s)
	}
	fmt.Println()
}
