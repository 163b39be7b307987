// Package csv provides streaming CSV reading with configurable dialects.
//
// Input is scanned through a fixed-size window, so a file of any size is
// read with bounded memory. Each call to Reader.Read returns one Row; a
// quoted field may contain the separator and line breaks, in which case
// the row spans several physical lines.
//
// # Thread Safety
//
// A Reader, Scanner or Writer must not be used from more than one goroutine
// at a time. Separate instances share no mutable state, and a Header is
// read-only once built, so rows from one reader may be handed to other
// goroutines.
//
// # Reading APIs
//
//   - NewReader / Reader.Read - pull one row at a time
//   - ForEach / ForEachContext - push rows to a visitor, closing the source
//   - NewScanner - bufio.Scanner style iteration
//   - Parse / ParseReader / Read - load every row into a Data value
//   - OpenFile - open a (possibly compressed) file
//
// # Example usage with ForEach:
//
//	d := csv.DefaultDialect()
//	d.HasHeader = true
//	r := csv.NewReader(file, d)
//	err := csv.ForEach(r, func(row *csv.Row) bool {
//	    name, _, _ := row.GetByName("name")
//	    fmt.Println(row.Line(), name)
//	    return true
//	})
//
// # Quoting
//
// Quote characters are removed only when they surround a whole field. A
// doubled quote inside a quoted field is not an escape: `"a""b"` reads as
// `a""b`. An unterminated quote runs to the end of input without error.
package csv

import (
	"io"
	"strings"
)

// Parse parses a complete CSV document held in memory.
//
// Example:
//
//	d := csv.DefaultDialect()
//	d.HasHeader = true
//	data, err := csv.Parse("name,age\nAlice,30\nBob,25", d)
//	// data.Len() == 2
func Parse(input string, d Dialect) (*Data, error) {
	return Read(strings.NewReader(input), d)
}

// ParseReader parses every row from reader. If reader is an io.Closer it is
// closed before ParseReader returns. For large inputs prefer ForEach or
// Scanner, which do not hold all rows in memory.
func ParseReader(reader io.Reader, d Dialect) (*Data, error) {
	return Read(reader, d)
}

// Format returns the format identifier for this package.
// Returns "CSV" to identify this as the CSV data format.
func Format() string {
	return "CSV"
}
