package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
)

// Column names in the season CSV.
const (
	ColPlayer   = "Player"
	ColSquad    = "Squad"
	ColComp     = "Comp"
	ColPos      = "Pos"
	ColNation   = "Nation"
	ColAge      = "Age"
	ColMin      = "Min"
	ColNineties = "90s"
)

// Dataset is an immutable snapshot of one season of player rows, loaded once
// at startup and shared read-only across requests.
type Dataset struct {
	header []string
	index  map[string]int
	cells  [][]string
}

// New builds a snapshot from an already-parsed table. The first header entry
// wins when a column name repeats.
func New(header []string, rows [][]string) *Dataset {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}
	return &Dataset{header: header, index: index, cells: rows}
}

// Load reads the season CSV at path. A missing or empty file is fatal to the
// caller; ragged rows are tolerated (short rows read as missing cells).
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s has no header row", path)
	}

	return New(records[0], records[1:]), nil
}

func (d *Dataset) NumRows() int {
	return len(d.cells)
}

func (d *Dataset) NumCols() int {
	return len(d.header)
}

func (d *Dataset) Row(i int) Row {
	return Row{ds: d, i: i}
}

// Rows returns row views over the snapshot in file order.
func (d *Dataset) Rows() []Row {
	rows := make([]Row, len(d.cells))
	for i := range d.cells {
		rows[i] = Row{ds: d, i: i}
	}
	return rows
}

// Leagues returns the distinct competitions, sorted ascending.
func (d *Dataset) Leagues() []string {
	return d.distinct(ColComp)
}

// Positions returns the distinct positions, sorted ascending.
func (d *Dataset) Positions() []string {
	return d.distinct(ColPos)
}

func (d *Dataset) distinct(col string) []string {
	seen := make(map[string]struct{})
	for i := range d.cells {
		v := d.Row(i).Text(col)
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Row is a view over one dataset row. Column lookups tolerate absence: an
// unknown column reads as "" / missing.
type Row struct {
	ds *Dataset
	i  int
}

func (r Row) cell(col string) (string, bool) {
	j, ok := r.ds.index[col]
	if !ok || j >= len(r.ds.cells[r.i]) {
		return "", false
	}
	return r.ds.cells[r.i][j], true
}

// Text returns the raw text cell, "" when the column is absent.
func (r Row) Text(col string) string {
	s, _ := r.cell(col)
	return s
}

// Num returns the numeric cell; coercion failures and absent columns are
// missing, never an error.
func (r Row) Num(col string) Value {
	s, ok := r.cell(col)
	if !ok {
		return None()
	}
	return Parse(s)
}
