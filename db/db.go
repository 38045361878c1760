// Package db is the relational side of biocat: an explicit connection
// handle, schema-driven discovery of sequence-bearing columns and the
// dynamic query builders that retrieve and search those sequences.
package db

import (
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/PrakyathPNayak/biocat"
)

// Config holds the connection parameters for the biocat database.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// DSN renders the driver connection string.
func (c Config) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
	mc.DBName = c.Database
	mc.ParseTime = true
	return mc.FormatDSN()
}

// Handle wraps one database connection. The caller owns its lifecycle:
// open, use, close. Nothing in this package keeps a global handle.
type Handle struct {
	db   *sqlx.DB
	name string
}

// Open connects and pings the database.
func Open(cfg Config) (*Handle, error) {
	db, err := sqlx.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	biocat.Info.Printf("connected to %s", cfg.Database)
	return &Handle{db: db, name: cfg.Database}, nil
}

// NewHandle wraps an existing connection; used by tests.
func NewHandle(db *sqlx.DB, name string) *Handle {
	return &Handle{db: db, name: name}
}

func (h *Handle) Close() error {
	return h.db.Close()
}

// Query runs a SELECT and returns all rows as column-name maps, with
// []byte values decoded to strings.
func (h *Handle) Query(query string, args ...interface{}) ([]map[string]interface{}, error) {
	rows, err := h.db.Queryx(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []map[string]interface{}
	for rows.Next() {
		m := map[string]interface{}{}
		if err := rows.MapScan(m); err != nil {
			return nil, err
		}
		for k, v := range m {
			if b, ok := v.([]byte); ok {
				m[k] = string(b)
			}
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// QueryValue runs a single-value lookup. ok is false when no row matched.
func (h *Handle) QueryValue(query string, args ...interface{}) (value string, ok bool, err error) {
	rows, err := h.Query(query, args...)
	if err != nil {
		return "", false, err
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	for _, v := range rows[0] {
		return asString(v), true, nil
	}
	return "", false, nil
}

// TableNames lists the tables of the connected schema.
func (h *Handle) TableNames() ([]string, error) {
	rows, err := h.Query("SHOW TABLES")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, row := range rows {
		for _, v := range row {
			names = append(names, asString(v))
		}
	}
	return names, nil
}

// Column describes one column of a table.
type Column struct {
	Field string
	Type  string
	Null  string
	Key   string
}

// DescribeTable introspects a table's columns.
func (h *Handle) DescribeTable(table string) ([]Column, error) {
	rows, err := h.Query("DESCRIBE " + table)
	if err != nil {
		return nil, err
	}
	cols := make([]Column, 0, len(rows))
	for _, row := range rows {
		cols = append(cols, Column{
			Field: asString(row["Field"]),
			Type:  asString(row["Type"]),
			Null:  asString(row["Null"]),
			Key:   asString(row["Key"]),
		})
	}
	return cols, nil
}

// RowCount counts the rows of a table. Table names are schema metadata,
// never user input.
func (h *Handle) RowCount(table string) (int64, error) {
	var count int64
	if err := h.db.Get(&count, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, err
	}
	return count, nil
}

// coreTables are the tables the overview statistics report on.
var coreTables = []struct{ Label, Table string }{
	{"Species", "species"},
	{"Genes", "gene"},
	{"Transcripts", "transcript"},
	{"Proteins", "protein"},
	{"Chromosomes", "chromosome"},
	{"Genetic Variants", "genetic_variant"},
	{"GO Annotations", "gene_go_annotation"},
}

// TableCount pairs a label with a record count.
type TableCount struct {
	Label string
	Count int64
}

// Stats reports record counts for the core tables. A missing table is
// skipped, not fatal.
func (h *Handle) Stats() []TableCount {
	var out []TableCount
	for _, t := range coreTables {
		n, err := h.RowCount(t.Table)
		if err != nil {
			biocat.Warn.Printf("skipping %s: %v", t.Table, err)
			continue
		}
		out = append(out, TableCount{Label: t.Label, Count: n})
	}
	return out
}

// ConnStatus summarizes a connection test.
type ConnStatus struct {
	Database      string
	ServerVersion string
	Tables        []string
}

// TestConnection verifies the connection and gathers server info.
func (h *Handle) TestConnection() (*ConnStatus, error) {
	st := &ConnStatus{Database: h.name}
	version, ok, err := h.QueryValue("SELECT VERSION()")
	if err != nil {
		return nil, err
	}
	if ok {
		st.ServerVersion = version
	}
	st.Tables, err = h.TableNames()
	if err != nil {
		return nil, err
	}
	return st, nil
}

const geneSearchQuery = `
SELECT
    s.species_name,
    g.gene_symbol,
    g.gene_name,
    g.gene_description,
    g.gene_biotype,
    c.chromosome_name,
    g.start_position,
    g.end_position,
    (g.end_position - g.start_position + 1) AS gene_length
FROM gene g
JOIN species s ON g.species_id = s.species_id
LEFT JOIN chromosome c ON g.chromosome_id = c.chromosome_id
WHERE (g.gene_symbol LIKE ? OR g.gene_name LIKE ? OR g.gene_description LIKE ?)
ORDER BY s.species_name, g.gene_symbol
LIMIT ?`

// SearchGenes finds genes by symbol, name or description substring.
func (h *Handle) SearchGenes(term string, limit int) ([]map[string]interface{}, error) {
	pattern := "%" + term + "%"
	return h.Query(geneSearchQuery, pattern, pattern, pattern, limit)
}

// ProteinSequence fetches one protein sequence by stable id.
func (h *Handle) ProteinSequence(stableID string) (string, error) {
	seq, ok, err := h.QueryValue(
		"SELECT protein_sequence FROM protein WHERE protein_stable_id = ?", stableID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", biocat.ErrNoData
	}
	return seq, nil
}

func asString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}
