// Package csv provides a streaming writer for rows.
//
// Writer is the inverse of Reader for fields that round-trip under the
// reader's quoting rules:
//   - Fields containing the separator, the quote character, CR or LF are quoted.
//   - Quote characters inside a field are written doubled, as most CSV
//     consumers expect. Reader does not undo the doubling; see Dialect.Quote.
//   - Line endings are LF unless UseCRLF is set.
package csv

import (
	"bufio"
	"io"
	"strings"
)

// Writer writes rows in a given dialect.
type Writer struct {
	w       *bufio.Writer
	sep     rune
	quote   rune
	special string

	// UseCRLF controls whether to use \r\n (true) or \n (false) as the line terminator.
	// Default: false (use \n)
	UseCRLF bool
}

// NewWriter creates a Writer that writes to w using d's separator and quote.
func NewWriter(w io.Writer, d Dialect) *Writer {
	d = d.snapshot()
	return &Writer{
		w:       bufio.NewWriter(w),
		sep:     d.Separator,
		quote:   d.Quote,
		special: string([]rune{d.Separator, d.Quote, '\r', '\n'}),
	}
}

// Write writes one record.
func (w *Writer) Write(fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if _, err := w.w.WriteRune(w.sep); err != nil {
				return err
			}
		}
		if err := w.writeField(field); err != nil {
			return err
		}
	}
	lineEnding := "\n"
	if w.UseCRLF {
		lineEnding = "\r\n"
	}
	_, err := w.w.WriteString(lineEnding)
	return err
}

// WriteRow writes the fields of row.
func (w *Writer) WriteRow(row *Row) error {
	return w.Write(row.fields)
}

// WriteAll writes all records and flushes.
func (w *Writer) WriteAll(records [][]string) error {
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// writeField writes a field, quoting it if it contains a special character.
func (w *Writer) writeField(value string) error {
	if !strings.ContainsAny(value, w.special) {
		_, err := w.w.WriteString(value)
		return err
	}

	if _, err := w.w.WriteRune(w.quote); err != nil {
		return err
	}
	for _, ch := range value {
		if ch == w.quote {
			if _, err := w.w.WriteRune(w.quote); err != nil {
				return err
			}
		}
		if _, err := w.w.WriteRune(ch); err != nil {
			return err
		}
	}
	_, err := w.w.WriteRune(w.quote)
	return err
}
