// Package ingest reads raw bank CSV exports.
//
// Exports are headerless and bank-specific: each bank puts the date,
// amount and description at fixed column positions, sometimes with
// filler columns in between. A Layout names those positions explicitly
// instead of dropping columns by hard-coded index.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// RawRow holds the three interpreted fields of one export record,
// still as text. Numeric validation happens during classification.
type RawRow struct {
	Date        string
	Amount      string
	Description string
}

// Layout maps the interpreted fields to zero-based column positions.
// Columns beyond those named are ignored.
type Layout struct {
	Name      string
	DateCol   int
	AmountCol int
	DescCol   int
}

// SchemaError reports a record that has too few columns for the layout.
type SchemaError struct {
	Row    int // 1-based record number
	Fields int
	Want   int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("record %d has %d column(s), layout needs at least %d", e.Row, e.Fields, e.Want)
}

// width returns the minimum number of columns a record must have.
func (l Layout) width() int {
	max := l.DateCol
	if l.AmountCol > max {
		max = l.AmountCol
	}
	if l.DescCol > max {
		max = l.DescCol
	}
	return max + 1
}

// Parse reads a headerless export and extracts the layout's columns.
// Any record narrower than the layout fails the whole run with a
// SchemaError; guessing a column mapping silently misaligns data.
func (l Layout) Parse(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // banks pad rows inconsistently; we validate ourselves

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading raw CSV: %w", err)
	}

	want := l.width()
	var rows []RawRow
	for i, rec := range records {
		if len(rec) < want {
			return nil, &SchemaError{Row: i + 1, Fields: len(rec), Want: want}
		}
		rows = append(rows, RawRow{
			Date:        rec[l.DateCol],
			Amount:      rec[l.AmountCol],
			Description: rec[l.DescCol],
		})
	}
	return rows, nil
}

// Registry holds named layouts.
type Registry struct {
	layouts map[string]Layout
}

// NewRegistry creates an empty layout registry.
func NewRegistry() *Registry {
	return &Registry{layouts: make(map[string]Layout)}
}

// Register adds a layout. Panics on duplicate name.
func (r *Registry) Register(l Layout) {
	key := strings.ToLower(l.Name)
	if _, ok := r.layouts[key]; ok {
		panic("duplicate layout name: " + key)
	}
	r.layouts[key] = l
}

// Get returns the layout for name.
func (r *Registry) Get(name string) (Layout, bool) {
	l, ok := r.layouts[strings.ToLower(name)]
	return l, ok
}

// Names returns the registered layout names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.layouts))
	for k := range r.layouts {
		names = append(names, k)
	}
	return names
}

// DefaultRegistry returns a registry with all built-in layouts.
//
// "generic" is date,amount,description in the first three columns.
// "wellsfargo" matches Wells Fargo checking exports, which carry two
// filler columns between the amount and the description.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Layout{Name: "generic", DateCol: 0, AmountCol: 1, DescCol: 2})
	r.Register(Layout{Name: "wellsfargo", DateCol: 0, AmountCol: 1, DescCol: 4})
	return r
}
