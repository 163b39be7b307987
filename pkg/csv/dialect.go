// Package csv provides configurable dialects for CSV reading.
package csv

import (
	"maps"
	"unicode/utf8"

	"github.com/shapestone/shape-csvstream/internal/tokenizer"
)

// Dialect configures how CSV text is split into rows.
//
// A Reader copies its Dialect when it is created; changing the value
// afterwards has no effect on that Reader. Build a new Reader to read with a
// different dialect.
type Dialect struct {
	// Separator is the field separator.
	// Default: ','
	Separator rune

	// Quote is the quote character. A quoted field may contain the separator
	// and line breaks. A doubled quote inside a quoted field is kept as two
	// quote characters; it is not an escape.
	// Default: '"'
	Quote rune

	// HasHeader treats the first row as column names. The header row is not
	// returned as data; rows expose it through GetByName.
	// Default: false
	HasHeader bool

	// SkipEmptyRows drops rows that consist of a single empty field.
	// Default: true
	SkipEmptyRows bool

	// StrictFieldCount fails with a *FieldCountError when a row has a
	// different number of fields than the first row.
	// Default: false
	StrictFieldCount bool

	// TrimFields removes leading and trailing white space from every field,
	// header names included.
	// Default: false
	TrimFields bool

	// BeginLine skips rows that start before this physical line (1-based).
	// Default: 0 (from the first line)
	BeginLine int

	// EndLine stops reading at the first row that starts after this physical
	// line (1-based, inclusive).
	// Default: 0 (to the end)
	EndLine int

	// HeaderAliases renames header names while the header is built.
	// Default: nil
	HeaderAliases map[string]string

	// BufferSize is the read window capacity in characters.
	// Default: 4096
	BufferSize int
}

// DefaultDialect returns the default dialect: comma separated, double-quote
// quoted, no header, empty rows skipped, lax field counts.
//
// Example:
//
//	d := csv.DefaultDialect()
//	d.Separator = '\t'
//	d.HasHeader = true
//	r := csv.NewReader(file, d)
func DefaultDialect() Dialect {
	return Dialect{
		Separator:        ',',
		Quote:            '"',
		HasHeader:        false,
		SkipEmptyRows:    true,
		StrictFieldCount: false,
		BufferSize:       tokenizer.DefaultWindowSize,
	}
}

// snapshot returns a copy of d with defaults filled in and no shared maps.
func (d Dialect) snapshot() Dialect {
	if d.Separator == 0 {
		d.Separator = ','
	}
	if d.Quote == 0 {
		d.Quote = '"'
	}
	if d.BufferSize <= 0 {
		d.BufferSize = tokenizer.DefaultWindowSize
	}
	if d.HeaderAliases != nil {
		d.HeaderAliases = maps.Clone(d.HeaderAliases)
	}
	return d
}

func (d Dialect) tokenizerOptions() tokenizer.Options {
	return tokenizer.Options{
		Separator:  d.Separator,
		Quote:      d.Quote,
		WindowSize: d.BufferSize,
	}
}

// validDelim reports whether r can serve as a separator or quote character.
func validDelim(r rune) bool {
	return r != 0 && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// Validate checks the dialect for settings a Reader cannot honour.
// Readers do not call Validate; it is provided for callers that accept
// dialects from users.
func (d Dialect) Validate() error {
	d = d.snapshot()
	if !validDelim(d.Separator) {
		return &OptionsError{Field: "Separator", Message: "invalid delimiter"}
	}
	if !validDelim(d.Quote) {
		return &OptionsError{Field: "Quote", Message: "invalid quote character"}
	}
	if d.Separator == d.Quote {
		return &OptionsError{Field: "Quote", Message: "quote character same as separator"}
	}
	if d.BeginLine < 0 || d.EndLine < 0 {
		return &OptionsError{Field: "BeginLine", Message: "line numbers must not be negative"}
	}
	if d.EndLine > 0 && d.BeginLine > d.EndLine {
		return &OptionsError{Field: "EndLine", Message: "end line before begin line"}
	}
	return nil
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "csv: invalid " + e.Field + ": " + e.Message
}
