package dataset

import (
	"github.com/sells-group/geoprofile-cli/internal/model"
)

// Table is the assembled dataset. It is never modified after Build returns;
// accessors hand out copies.
type Table struct {
	rows []model.Profile
}

// newTable takes ownership of rows.
func newTable(rows []model.Profile) *Table {
	return &Table{rows: rows}
}

// FromProfiles builds a table from a copy of profiles, e.g. rows read back
// from an export.
func FromProfiles(profiles []model.Profile) *Table {
	rows := make([]model.Profile, len(profiles))
	copy(rows, profiles)
	return newTable(rows)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// At returns row i.
func (t *Table) At(i int) model.Profile {
	return t.rows[i]
}

// Profiles returns a copy of all rows.
func (t *Table) Profiles() []model.Profile {
	out := make([]model.Profile, len(t.rows))
	copy(out, t.rows)
	return out
}

// Header returns the column names.
func (t *Table) Header() []string {
	h := make([]string, len(model.Columns))
	copy(h, model.Columns)
	return h
}

// Records returns every row as strings in column order.
func (t *Table) Records() [][]string {
	out := make([][]string, len(t.rows))
	for i, p := range t.rows {
		out[i] = p.Record()
	}
	return out
}

// Filter returns the rows matching the given salutation.
func (t *Table) Filter(s model.Salutation) []model.Profile {
	var out []model.Profile
	for _, p := range t.rows {
		if p.Salutation == s {
			out = append(out, p)
		}
	}
	return out
}
