package db

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PrakyathPNayak/biocat"
)

// Source describes one discovered sequence-bearing (table, column) pair.
type Source struct {
	Table       string
	Column      string
	Description string
	Count       int64
	// AvgLength is nil when the probe could not compute it cheaply.
	AvgLength *float64
}

// Key is the "table.column" identifier the discovery map is keyed by.
func (s Source) Key() string {
	return s.Table + "." + s.Column
}

// Discovery aggregates one discovery pass. It is rebuilt from scratch on
// every call; nothing is cached.
type Discovery struct {
	Sources      map[string]Source
	TotalSources int
}

// candidates is the fixed list of known sequence columns to probe.
var candidates = []Source{
	{Table: "chromosome", Column: "sequence", Description: "Chromosome sequences"},
	{Table: "gene", Column: "dna_sequence", Description: "Gene DNA sequences"},
	{Table: "transcript", Column: "cdna_sequence", Description: "cDNA sequences"},
	{Table: "transcript", Column: "dna_sequence", Description: "Transcript DNA sequences"},
	{Table: "protein", Column: "protein_sequence", Description: "Protein sequences (amino acids)"},
	{Table: "exon", Column: "sequence", Description: "Exon sequences"},
	{Table: "intron", Column: "sequence", Description: "Intron sequences"},
}

// sequence-ish column name fragments. Known to over-match (a column named
// "consequence" contains "seq"); accepted as a heuristic.
var sequenceHints = []string{"seq", "dna", "rna"}

// Locate probes the fixed candidate list, then scans the candidate tables
// for any further column whose name hints at sequence data. A table or
// column that does not exist, or a probe that errors, is treated as absent.
// Only columns with at least one non-null, non-empty value are reported.
func Locate(h *Handle) *Discovery {
	d := &Discovery{Sources: make(map[string]Source)}

	for _, c := range candidates {
		src, ok := probe(h, c)
		if ok {
			d.Sources[src.Key()] = src
		}
	}

	tables := map[string]bool{}
	for _, c := range candidates {
		tables[c.Table] = true
	}
	for table := range tables {
		cols, err := h.DescribeTable(table)
		if err != nil {
			// Table absent from this schema; expected, not an error.
			continue
		}
		for _, col := range cols {
			if !looksLikeSequence(col.Field) {
				continue
			}
			c := Source{
				Table:       table,
				Column:      col.Field,
				Description: fmt.Sprintf("%s %s", capitalize(table), col.Field),
			}
			if _, seen := d.Sources[c.Key()]; seen {
				continue
			}
			if src, ok := probe(h, c); ok {
				d.Sources[src.Key()] = src
			}
		}
	}

	d.TotalSources = len(d.Sources)
	return d
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func looksLikeSequence(column string) bool {
	column = strings.ToLower(column)
	for _, hint := range sequenceHints {
		if strings.Contains(column, hint) {
			return true
		}
	}
	return false
}

// probe checks a candidate for non-empty data. Errors mean "not present".
func probe(h *Handle, c Source) (Source, bool) {
	query := fmt.Sprintf(
		"SELECT COUNT(%[1]s) AS sequence_count, ROUND(AVG(LENGTH(%[1]s)), 0) AS avg_length "+
			"FROM %[2]s WHERE %[1]s IS NOT NULL AND %[1]s != ''",
		c.Column, c.Table)

	rows, err := h.Query(query)
	if err != nil || len(rows) == 0 {
		return Source{}, false
	}
	count := asInt64(rows[0]["sequence_count"])
	if count == 0 {
		return Source{}, false
	}

	c.Count = count
	if avg, ok := asFloat(rows[0]["avg_length"]); ok {
		c.AvgLength = &avg
	}
	biocat.Info.Printf("sequence source %s: %d rows", c.Key(), count)
	return c, true
}

func asInt64(v interface{}) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case float64:
		return int64(x)
	case string:
		n, _ := strconv.ParseInt(x, 10, 64)
		return n
	}
	return 0
}

func asFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		return x, true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	}
	return 0, false
}
