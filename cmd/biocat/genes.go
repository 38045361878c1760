package main

import (
	"flag"
	"fmt"
)

// Command to search genes by symbol, name or description.
type cmdGenes struct {
	cmdConfig // embed config parser.

	term *string
}

func (cmd *cmdGenes) Flags(fs *flag.FlagSet) *flag.FlagSet {
	fs = cmd.cmdConfig.Flags(fs)
	cmd.term = fs.String("m", "", "search term")
	return fs
}

func (cmd *cmdGenes) Run(args []string) {
	cmd.ParseConfig()

	term := *cmd.term
	if term == "" && len(args) > 0 {
		term = args[0]
	}
	if term == "" {
		ERROR.Fatalf("need a search term (-m or first argument)")
	}

	h := cmd.connect()
	defer h.Close()

	rows, err := h.SearchGenes(term, cmd.limit)
	if err != nil {
		ERROR.Fatalf("gene search failed: %v", err)
	}
	if len(rows) == 0 {
		fmt.Printf("No genes matching %q\n", term)
		return
	}
	fmt.Printf("%d genes matching %q:\n", len(rows), term)
	for _, row := range rows {
		printRow(row)
	}
}
