package db

import (
	"fmt"

	"github.com/PrakyathPNayak/biocat"
)

// Shape is the schema pattern of a known table: it decides which joins and
// identifying columns a sequence query carries. Anything outside the known
// set falls back to Generic.
type Shape int

const (
	ShapeGeneric Shape = iota
	ShapeChromosome
	ShapeGene
	ShapeTranscript
)

func (s Shape) String() string {
	switch s {
	case ShapeChromosome:
		return "chromosome"
	case ShapeGene:
		return "gene"
	case ShapeTranscript:
		return "transcript"
	default:
		return "generic"
	}
}

// ClassifyTable maps a table name onto its Shape by exact match.
func ClassifyTable(table string) Shape {
	switch table {
	case "chromosome":
		return ShapeChromosome
	case "gene":
		return ShapeGene
	case "transcript":
		return ShapeTranscript
	default:
		return ShapeGeneric
	}
}

// shapeFragment holds the query fragments one shape contributes: the
// select-list of identifying columns, the joins providing them and the
// alias of the sequence-bearing table.
type shapeFragment struct {
	alias   string
	columns string
	joins   string
}

// Dispatch table: one fragment per shape, Generic as the default arm.
var shapeFragments = map[Shape]shapeFragment{
	ShapeChromosome: {
		alias: "c",
		columns: `c.chromosome_id,
    c.chromosome_name,
    s.species_name`,
		joins: `FROM chromosome c
JOIN genome_assembly ga ON c.assembly_id = ga.assembly_id
JOIN species s ON ga.species_id = s.species_id`,
	},
	ShapeGene: {
		alias: "g",
		columns: `g.gene_id,
    g.gene_symbol,
    g.gene_name,
    s.species_name,
    c.chromosome_name`,
		joins: `FROM gene g
JOIN species s ON g.species_id = s.species_id
LEFT JOIN chromosome c ON g.chromosome_id = c.chromosome_id`,
	},
	ShapeTranscript: {
		alias: "t",
		columns: `t.transcript_id,
    t.transcript_stable_id,
    g.gene_symbol,
    g.gene_name,
    s.species_name`,
		joins: `FROM transcript t
JOIN gene g ON t.gene_id = g.gene_id
JOIN species s ON g.species_id = s.species_id`,
	},
}

// qualify prefixes a column with the shape's table alias; Generic queries
// use the bare column name.
func (f shapeFragment) qualify(column string) string {
	if f.alias == "" {
		return column
	}
	return f.alias + "." + column
}

// RetrievalQuery builds the shape-aware sequence retrieval query for a
// discovered (table, column) pair. The two bound parameters are the minimum
// sequence length and the row limit, in that order. Table and column names
// are schema metadata: they come from the fixed candidate list or from
// DESCRIBE output, never from user text, and are interpolated directly.
func RetrievalQuery(table, column string) string {
	f, known := shapeFragments[ClassifyTable(table)]
	if !known {
		f = shapeFragment{columns: "*", joins: "FROM " + table}
	}
	col := f.qualify(column)
	return fmt.Sprintf(`SELECT
    %s,
    LENGTH(%s) AS sequence_length,
    LEFT(%s, 1000) AS sequence_preview,
    %s AS full_sequence
%s
WHERE %s IS NOT NULL
AND LENGTH(%s) >= ?
ORDER BY sequence_length DESC
LIMIT ?`,
		f.columns, col, col, col, f.joins, col, col)
}

// PatternQuery builds the substring search query for a discovered pair.
// Bound parameters: pattern (for LOCATE), pattern with % wrapping (for
// LIKE), row limit.
func PatternQuery(table, column string) string {
	f, known := shapeFragments[ClassifyTable(table)]
	if !known {
		f = shapeFragment{columns: "*", joins: "FROM " + table}
	}
	col := f.qualify(column)
	return fmt.Sprintf(`SELECT
    %s,
    LENGTH(%s) AS sequence_length,
    LOCATE(?, %s) AS pattern_position,
    LEFT(%s, 500) AS sequence_preview
%s
WHERE %s LIKE ?
ORDER BY sequence_length DESC
LIMIT ?`,
		f.columns, col, col, col, f.joins, col)
}

// Random sampling length band.
const (
	sampleMinLength = 20
	sampleMaxLength = 5000
)

// RandomSampleQuery builds the shape-independent random sampling query.
// Bound parameters: min length, max length, sample count.
func RandomSampleQuery(table, column string) string {
	return fmt.Sprintf(`SELECT %s AS sequence
FROM %s
WHERE %s IS NOT NULL
AND LENGTH(%s) >= ?
AND LENGTH(%s) <= ?
ORDER BY RAND()
LIMIT ?`,
		column, table, column, column, column)
}

// FetchSequences retrieves up to limit sequences of at least minLength from
// a discovered source, longest first. Query failures surface verbatim.
func (h *Handle) FetchSequences(table, column string, limit, minLength int) ([]map[string]interface{}, error) {
	if limit <= 0 {
		limit = 50
	}
	if minLength <= 0 {
		minLength = 10
	}
	return h.Query(RetrievalQuery(table, column), minLength, limit)
}

// SearchPattern cleans the pattern and searches the source for it. The
// pattern is validated before any query is built.
func (h *Handle) SearchPattern(pattern, table, column string, limit int) ([]map[string]interface{}, error) {
	clean, err := biocat.CleanPattern(pattern)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	return h.Query(PatternQuery(table, column), clean, "%"+clean+"%", limit)
}

// RandomSequences samples count sequences within the standard length band.
func (h *Handle) RandomSequences(table, column string, count int) ([]string, error) {
	if count <= 0 {
		count = 10
	}
	rows, err := h.Query(RandomSampleQuery(table, column), sampleMinLength, sampleMaxLength, count)
	if err != nil {
		return nil, err
	}
	var seqs []string
	for _, row := range rows {
		if s := asString(row["sequence"]); s != "" {
			seqs = append(seqs, s)
		}
	}
	return seqs, nil
}
