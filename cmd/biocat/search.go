package main

import (
	"flag"
	"fmt"

	"github.com/PrakyathPNayak/biocat"
)

// Command to search a source for a DNA pattern.
type cmdSearch struct {
	cmdConfig // embed config parser.

	table   *string
	column  *string
	pattern *string
}

func (cmd *cmdSearch) Flags(fs *flag.FlagSet) *flag.FlagSet {
	fs = cmd.cmdConfig.Flags(fs)
	cmd.table = fs.String("t", "", "source table (default: first discovered)")
	cmd.column = fs.String("col", "", "source column (default: first discovered)")
	cmd.pattern = fs.String("m", "", "DNA pattern to search for")
	return fs
}

func (cmd *cmdSearch) Run(args []string) {
	cmd.ParseConfig()

	pattern := *cmd.pattern
	if pattern == "" && len(args) > 0 {
		pattern = args[0]
	}
	clean, err := biocat.CleanPattern(pattern)
	if err != nil {
		ERROR.Fatalf("bad pattern %q: %v", pattern, err)
	}

	h := cmd.connect()
	defer h.Close()

	table, column := resolveSource(h, *cmd.table, *cmd.column)
	rows, err := h.SearchPattern(clean, table, column, cmd.limit)
	if err != nil {
		ERROR.Fatalf("search of %s.%s failed: %v", table, column, err)
	}
	if len(rows) == 0 {
		fmt.Printf("Pattern %s not found in %s.%s\n", clean, table, column)
		return
	}

	fmt.Printf("%d matches for %s in %s.%s:\n", len(rows), clean, table, column)
	for _, row := range rows {
		printRow(row)
	}
}
