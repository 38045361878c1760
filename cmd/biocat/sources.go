package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/PrakyathPNayak/biocat/db"
)

// Command to discover sequence-bearing tables and columns.
type cmdSources struct {
	cmdConfig // embed config parser.
}

func (cmd *cmdSources) Flags(fs *flag.FlagSet) *flag.FlagSet {
	return cmd.cmdConfig.Flags(fs)
}

func (cmd *cmdSources) Run(args []string) {
	cmd.ParseConfig()
	h := cmd.connect()
	defer h.Close()

	d := db.Locate(h)
	if d.TotalSources == 0 {
		fmt.Println("No sequence data found in this schema.")
		return
	}

	keys := make([]string, 0, len(d.Sources))
	for k := range d.Sources {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("%d sequence sources:\n", d.TotalSources)
	for _, k := range keys {
		src := d.Sources[k]
		avg := "n/a"
		if src.AvgLength != nil {
			avg = fmt.Sprintf("%.0f", *src.AvgLength)
		}
		fmt.Printf("  %-32s %-36s rows=%-8d avg_len=%s\n",
			k, src.Description, src.Count, avg)
	}
}
