package main

import (
	"flag"
	"fmt"
)

// Command to print connection status and core table counts.
type cmdStats struct {
	cmdConfig // embed config parser.
}

func (cmd *cmdStats) Flags(fs *flag.FlagSet) *flag.FlagSet {
	return cmd.cmdConfig.Flags(fs)
}

func (cmd *cmdStats) Run(args []string) {
	cmd.ParseConfig()
	h := cmd.connect()
	defer h.Close()

	st, err := h.TestConnection()
	if err != nil {
		ERROR.Fatalf("connection check failed: %v", err)
	}
	fmt.Printf("Connected to %s (server %s, %d tables)\n",
		st.Database, st.ServerVersion, len(st.Tables))

	for _, tc := range h.Stats() {
		fmt.Printf("  %-18s %d\n", tc.Label, tc.Count)
	}
}
