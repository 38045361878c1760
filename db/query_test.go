package db

import (
	"strings"
	"testing"
)

func TestClassifyTable(t *testing.T) {
	tests := []struct {
		table string
		want  Shape
	}{
		{"chromosome", ShapeChromosome},
		{"gene", ShapeGene},
		{"transcript", ShapeTranscript},
		{"protein", ShapeGeneric},
		{"exon", ShapeGeneric},
		{"genes", ShapeGeneric}, // exact match only
		{"", ShapeGeneric},
	}
	for _, tt := range tests {
		if got := ClassifyTable(tt.table); got != tt.want {
			t.Errorf("ClassifyTable(%q) = %s, want %s", tt.table, got, tt.want)
		}
	}
}

func TestRetrievalQueryShapes(t *testing.T) {
	q := RetrievalQuery("gene", "dna_sequence")
	for _, want := range []string{
		"g.gene_symbol",
		"s.species_name",
		"LEFT(g.dna_sequence, 1000)",
		"g.dna_sequence IS NOT NULL",
		"ORDER BY sequence_length DESC",
	} {
		if !strings.Contains(q, want) {
			t.Errorf("gene retrieval query missing %q:\n%s", want, q)
		}
	}

	q = RetrievalQuery("transcript", "cdna_sequence")
	if !strings.Contains(q, "JOIN gene g ON t.gene_id = g.gene_id") {
		t.Errorf("transcript retrieval query missing gene join:\n%s", q)
	}

	q = RetrievalQuery("exon", "sequence")
	if !strings.Contains(q, "SELECT\n    *") || !strings.Contains(q, "FROM exon") {
		t.Errorf("generic retrieval query wrong:\n%s", q)
	}
	if strings.Contains(q, "JOIN") {
		t.Errorf("generic retrieval query must not join:\n%s", q)
	}
}

// Data values must always be bound, never interpolated: the built SQL may
// contain no literal digits besides the preview lengths.
func TestQueriesBindDataValues(t *testing.T) {
	queries := []string{
		RetrievalQuery("gene", "dna_sequence"),
		RetrievalQuery("unknown_table", "seq_col"),
		PatternQuery("gene", "dna_sequence"),
		PatternQuery("unknown_table", "seq_col"),
		RandomSampleQuery("gene", "dna_sequence"),
	}
	for _, q := range queries {
		if !strings.Contains(q, "?") {
			t.Errorf("query has no bound parameters:\n%s", q)
		}
		if strings.Contains(q, "LIMIT ") && !strings.Contains(q, "LIMIT ?") {
			t.Errorf("limit not bound:\n%s", q)
		}
	}
}

func TestPatternQueryUsesLocate(t *testing.T) {
	q := PatternQuery("gene", "dna_sequence")
	if !strings.Contains(q, "LOCATE(?, g.dna_sequence)") {
		t.Errorf("pattern query missing bound LOCATE:\n%s", q)
	}
	if !strings.Contains(q, "g.dna_sequence LIKE ?") {
		t.Errorf("pattern query missing bound LIKE:\n%s", q)
	}
}

func TestCatalog(t *testing.T) {
	cats := Categories()
	if len(cats) == 0 {
		t.Fatal("no catalog categories")
	}
	for _, c := range cats {
		names := QueriesIn(c)
		if len(names) == 0 {
			t.Errorf("category %q is empty", c)
		}
		for _, n := range names {
			if CatalogQuery(c, n) == "" {
				t.Errorf("catalog query %s/%s is empty", c, n)
			}
		}
	}
	if CatalogQuery("No Such", "query") != "" {
		t.Error("unknown catalog query should be empty")
	}
}
