package db

import "sort"

// The canned query catalog: static SQL templates the presentation layer
// offers per category. Parameterized templates use ? placeholders for every
// data value.

var catalog = map[string]map[string]string{
	"Basic Statistics": {
		"database_overview": `
SELECT 'Species' AS table_name, COUNT(*) AS record_count FROM species
UNION ALL SELECT 'Genes', COUNT(*) FROM gene
UNION ALL SELECT 'Transcripts', COUNT(*) FROM transcript
UNION ALL SELECT 'Proteins', COUNT(*) FROM protein
UNION ALL SELECT 'Chromosomes', COUNT(*) FROM chromosome
UNION ALL SELECT 'Genetic Variants', COUNT(*) FROM genetic_variant
UNION ALL SELECT 'GO Annotations', COUNT(*) FROM gene_go_annotation
ORDER BY record_count DESC`,
		"species_summary": `
SELECT
    s.species_name,
    s.common_name,
    COUNT(DISTINCT g.gene_id) AS gene_count,
    COUNT(DISTINCT t.transcript_id) AS transcript_count,
    COUNT(DISTINCT p.protein_id) AS protein_count
FROM species s
LEFT JOIN gene g ON s.species_id = g.species_id
LEFT JOIN transcript t ON g.gene_id = t.gene_id
LEFT JOIN protein p ON t.transcript_id = p.transcript_id
GROUP BY s.species_id, s.species_name, s.common_name
ORDER BY gene_count DESC`,
		"chromosome_stats": `
SELECT
    s.species_name,
    c.chromosome_name,
    c.sequence_length,
    COUNT(g.gene_id) AS gene_count,
    ROUND(COUNT(g.gene_id) / (c.sequence_length / 1000000), 2) AS genes_per_mb
FROM species s
JOIN genome_assembly ga ON s.species_id = ga.species_id
JOIN chromosome c ON ga.assembly_id = c.assembly_id
LEFT JOIN gene g ON c.chromosome_id = g.chromosome_id
WHERE c.sequence_length IS NOT NULL
GROUP BY s.species_name, c.chromosome_name, c.sequence_length
ORDER BY s.species_name, c.chromosome_name`,
	},
	"Gene Analysis": {
		"genes_by_biotype": `
SELECT
    s.species_name,
    g.gene_biotype,
    COUNT(*) AS gene_count,
    ROUND(AVG(g.end_position - g.start_position + 1), 0) AS avg_length
FROM gene g
JOIN species s ON g.species_id = s.species_id
WHERE g.gene_biotype IS NOT NULL
GROUP BY s.species_name, g.gene_biotype
ORDER BY s.species_name, gene_count DESC`,
		"longest_genes": `
SELECT
    s.species_name,
    g.gene_symbol,
    g.gene_name,
    g.gene_biotype,
    c.chromosome_name,
    (g.end_position - g.start_position + 1) AS gene_length,
    g.start_position,
    g.end_position
FROM gene g
JOIN species s ON g.species_id = s.species_id
LEFT JOIN chromosome c ON g.chromosome_id = c.chromosome_id
WHERE g.start_position IS NOT NULL AND g.end_position IS NOT NULL
ORDER BY gene_length DESC
LIMIT 50`,
		"genes_with_multiple_transcripts": `
SELECT
    s.species_name,
    g.gene_symbol,
    g.gene_name,
    COUNT(t.transcript_id) AS transcript_count,
    GROUP_CONCAT(t.transcript_biotype) AS transcript_types
FROM gene g
JOIN species s ON g.species_id = s.species_id
JOIN transcript t ON g.gene_id = t.gene_id
GROUP BY g.gene_id, s.species_name, g.gene_symbol, g.gene_name
HAVING transcript_count > 1
ORDER BY transcript_count DESC`,
	},
	"Protein Analysis": {
		"protein_length_distribution": `
SELECT
    s.species_name,
    CASE
        WHEN p.protein_length < 100 THEN 'Very Short (<100 AA)'
        WHEN p.protein_length < 300 THEN 'Short (100-299 AA)'
        WHEN p.protein_length < 600 THEN 'Medium (300-599 AA)'
        WHEN p.protein_length < 1000 THEN 'Long (600-999 AA)'
        ELSE 'Very Long (>=1000 AA)'
    END AS length_category,
    COUNT(*) AS protein_count,
    ROUND(AVG(p.protein_length), 0) AS avg_length
FROM protein p
JOIN transcript t ON p.transcript_id = t.transcript_id
JOIN gene g ON t.gene_id = g.gene_id
JOIN species s ON g.species_id = s.species_id
WHERE p.protein_length IS NOT NULL
GROUP BY s.species_name, length_category
ORDER BY s.species_name, avg_length`,
		"largest_proteins": `
SELECT
    s.species_name,
    g.gene_symbol,
    g.gene_name,
    p.protein_stable_id,
    p.protein_length,
    p.molecular_weight,
    p.isoelectric_point
FROM protein p
JOIN transcript t ON p.transcript_id = t.transcript_id
JOIN gene g ON t.gene_id = g.gene_id
JOIN species s ON g.species_id = s.species_id
WHERE p.protein_length IS NOT NULL
ORDER BY p.protein_length DESC
LIMIT 30`,
	},
	"Sequence Analysis": {
		"sample_dna_sequences": `
SELECT
    g.gene_symbol,
    g.gene_name,
    s.species_name,
    LEFT(g.dna_sequence, 100) AS sequence_preview,
    LENGTH(g.dna_sequence) AS sequence_length
FROM gene g
JOIN species s ON g.species_id = s.species_id
WHERE g.dna_sequence IS NOT NULL
AND LENGTH(g.dna_sequence) > 50
ORDER BY RAND()
LIMIT 10`,
		"sequence_column_detection": `
SELECT
    TABLE_NAME,
    COLUMN_NAME,
    DATA_TYPE,
    CHARACTER_MAXIMUM_LENGTH
FROM INFORMATION_SCHEMA.COLUMNS
WHERE TABLE_SCHEMA = DATABASE()
AND (COLUMN_NAME LIKE '%seq%' OR COLUMN_NAME LIKE '%dna%' OR COLUMN_NAME LIKE '%rna%')
AND DATA_TYPE IN ('text', 'longtext', 'mediumtext', 'varchar')
ORDER BY TABLE_NAME, COLUMN_NAME`,
	},
	"Comparative Analysis": {
		"species_comparison": `
SELECT
    s1.species_name AS species_1,
    s2.species_name AS species_2,
    o.orthology_type,
    COUNT(*) AS ortholog_count,
    ROUND(AVG(o.percentage_identity), 2) AS avg_identity,
    ROUND(AVG(o.dn_ds_ratio), 4) AS avg_dn_ds
FROM ortholog o
JOIN gene g1 ON o.gene_a_id = g1.gene_id
JOIN gene g2 ON o.gene_b_id = g2.gene_id
JOIN species s1 ON g1.species_id = s1.species_id
JOIN species s2 ON g2.species_id = s2.species_id
WHERE s1.species_id != s2.species_id
GROUP BY s1.species_name, s2.species_name, o.orthology_type
ORDER BY ortholog_count DESC`,
	},
	"Functional Annotation": {
		"go_term_distribution": `
SELECT
    go.go_namespace,
    COUNT(DISTINCT gga.gene_id) AS annotated_genes,
    COUNT(*) AS total_annotations
FROM gene_go_annotation gga
JOIN gene_ontology go ON gga.go_id = go.go_id
GROUP BY go.go_namespace
ORDER BY annotated_genes DESC`,
		"top_go_terms": `
SELECT
    go.go_id,
    go.go_name,
    go.go_namespace,
    COUNT(gga.gene_id) AS gene_count
FROM gene_go_annotation gga
JOIN gene_ontology go ON gga.go_id = go.go_id
GROUP BY go.go_id, go.go_name, go.go_namespace
ORDER BY gene_count DESC
LIMIT 20`,
	},
	"Genomic Variation": {
		"variant_types": `
SELECT
    s.species_name,
    gv.variant_type,
    COUNT(*) AS variant_count,
    ROUND(AVG(gv.minor_allele_frequency), 4) AS avg_maf
FROM genetic_variant gv
JOIN chromosome c ON gv.chromosome_id = c.chromosome_id
JOIN genome_assembly ga ON c.assembly_id = ga.assembly_id
JOIN species s ON ga.species_id = s.species_id
GROUP BY s.species_name, gv.variant_type
ORDER BY s.species_name, variant_count DESC`,
	},
	"Custom Templates": {
		"gene_region_search": `
SELECT
    s.species_name,
    g.gene_symbol,
    g.gene_name,
    c.chromosome_name,
    g.start_position,
    g.end_position,
    (g.end_position - g.start_position + 1) AS gene_length
FROM gene g
JOIN species s ON g.species_id = s.species_id
LEFT JOIN chromosome c ON g.chromosome_id = c.chromosome_id
WHERE c.chromosome_name = ?
AND g.start_position >= ?
AND g.end_position <= ?
ORDER BY g.start_position`,
		"protein_length_range": `
SELECT
    s.species_name,
    g.gene_symbol,
    g.gene_name,
    p.protein_stable_id,
    p.protein_length,
    p.molecular_weight
FROM protein p
JOIN transcript t ON p.transcript_id = t.transcript_id
JOIN gene g ON t.gene_id = g.gene_id
JOIN species s ON g.species_id = s.species_id
WHERE p.protein_length BETWEEN ? AND ?
ORDER BY p.protein_length DESC`,
	},
}

// Categories lists the catalog categories, sorted.
func Categories() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// QueriesIn lists the query names of one category, sorted.
func QueriesIn(category string) []string {
	queries, ok := catalog[category]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(queries))
	for name := range queries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CatalogQuery returns one canned query, or "" when unknown.
func CatalogQuery(category, name string) string {
	return catalog[category][name]
}
