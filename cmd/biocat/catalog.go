package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/PrakyathPNayak/biocat/db"
)

// Command to list or run canned catalog queries. With no flags it lists
// categories; with -cat it lists that category's queries; with -cat and -q
// it runs the query, binding any positional args as parameters.
type cmdCatalog struct {
	cmdConfig // embed config parser.

	category *string
	query    *string
}

func (cmd *cmdCatalog) Flags(fs *flag.FlagSet) *flag.FlagSet {
	fs = cmd.cmdConfig.Flags(fs)
	cmd.category = fs.String("cat", "", "catalog category")
	cmd.query = fs.String("q", "", "query name within the category")
	return fs
}

func (cmd *cmdCatalog) Run(args []string) {
	cmd.ParseConfig()

	if *cmd.category == "" {
		fmt.Println("Categories:")
		for _, name := range db.Categories() {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	if *cmd.query == "" {
		names := db.QueriesIn(*cmd.category)
		if names == nil {
			ERROR.Fatalf("unknown category %q", *cmd.category)
		}
		fmt.Printf("Queries in %s:\n", *cmd.category)
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
		return
	}

	query := db.CatalogQuery(*cmd.category, *cmd.query)
	if query == "" {
		ERROR.Fatalf("unknown query %s/%s", *cmd.category, *cmd.query)
	}
	want := strings.Count(query, "?")
	if len(args) != want {
		ERROR.Fatalf("query %s/%s takes %d parameters, got %d",
			*cmd.category, *cmd.query, want, len(args))
	}
	params := make([]interface{}, len(args))
	for i, a := range args {
		params[i] = a
	}

	h := cmd.connect()
	defer h.Close()
	rows, err := h.Query(query, params...)
	if err != nil {
		ERROR.Fatalf("query %s/%s failed: %v", *cmd.category, *cmd.query, err)
	}
	if len(rows) == 0 {
		fmt.Println("No rows.")
		return
	}
	for _, row := range rows {
		printRow(row)
	}
}
