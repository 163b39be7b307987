// Package csv provides the Row type returned by readers.
//
// # Row Type
//
// Row represents one logical CSV record. A record may span several physical
// lines when a quoted field contains line breaks; Line reports the first.
//
//	row, _ := r.Read()
//	name, ok := row.Get(0)                  // Get by index
//	age, ok, err := row.GetByName("age")    // Get by header name
//
// Rows are independent values: their strings do not share memory with the
// reader, so they stay valid after further reads.
package csv

import (
	"strings"
)

// Row is one parsed CSV record.
type Row struct {
	line   int
	fields []string
	header *Header
}

// NewRow creates a Row from field values. header may be nil.
func NewRow(line int, fields []string, header *Header) *Row {
	return &Row{line: line, fields: fields, header: header}
}

// Line returns the 1-based physical line the row started on.
func (r *Row) Line() int {
	return r.line
}

// Len returns the number of fields in the row.
func (r *Row) Len() int {
	return len(r.fields)
}

// Get gets the field value at the specified index.
// Returns ("", false) if the index is out of bounds.
// Index is 0-based.
func (r *Row) Get(index int) (string, bool) {
	if index < 0 || index >= len(r.fields) {
		return "", false
	}
	return r.fields[index], true
}

// GetByName gets the field value by header name.
//
// It returns ErrHeaderUnavailable when the row has no header. A name the
// header does not know, or a column the row is too short to have, yields
// ("", false, nil).
//
// Example:
//
//	name, ok, err := row.GetByName("name")
//	if err != nil {
//	    // reader was not configured with HasHeader
//	}
//	if !ok {
//	    // no such column in this row
//	}
func (r *Row) GetByName(name string) (string, bool, error) {
	if r.header == nil {
		return "", false, ErrHeaderUnavailable
	}
	i, ok := r.header.Index(name)
	if !ok {
		return "", false, nil
	}
	v, ok := r.Get(i)
	return v, ok, nil
}

// Header returns the shared header, or nil.
func (r *Row) Header() *Header {
	return r.header
}

// Fields returns all field values in the row.
// This returns a copy of the fields slice.
func (r *Row) Fields() []string {
	fields := make([]string, len(r.fields))
	copy(fields, r.fields)
	return fields
}

// Map returns the fields keyed by header name. Columns missing from the row
// are absent from the map. It returns ErrHeaderUnavailable without a header.
func (r *Row) Map() (map[string]string, error) {
	if r.header == nil {
		return nil, ErrHeaderUnavailable
	}
	m := make(map[string]string, r.header.Len())
	for _, name := range r.header.names {
		if v, ok := r.Get(r.header.index[name]); ok {
			m[name] = v
		}
	}
	return m, nil
}

// Set replaces the field at index. It reports false if index is out of range.
func (r *Row) Set(index int, value string) bool {
	if index < 0 || index >= len(r.fields) {
		return false
	}
	r.fields[index] = value
	return true
}

// Append adds a field to the end of the row.
func (r *Row) Append(value string) {
	r.fields = append(r.fields, value)
}

// String returns the fields joined by commas, for debugging.
func (r *Row) String() string {
	return strings.Join(r.fields, ",")
}
