package csv

import (
	"io"
	"strings"

	"github.com/shapestone/shape-csvstream/internal/tokenizer"
)

// Source is a sequential character source. ReadRunes fills p with up to
// len(p) characters and returns io.EOF at the end of input.
type Source = tokenizer.Source

// Reader reads rows from a character stream one at a time.
//
// The input is scanned through a fixed-size window, so memory use does not
// grow with the size of the input. A Reader is not safe for concurrent use.
//
// Example:
//
//	r := csv.NewReader(file, csv.DefaultDialect())
//	defer r.Close()
//	for {
//	    row, err := r.Read()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(row.Fields())
//	}
type Reader struct {
	dialect Dialect
	tok     *tokenizer.Tokenizer
	closer  io.Closer

	header   *Header
	expected int // field count of the first row, -1 until seen
	err      error
	done     bool

	closed   bool
	closeErr error
}

// NewReader creates a Reader for UTF-8 text from src with the given dialect.
// If src is an io.Closer, Close closes it.
func NewReader(src io.Reader, d Dialect) *Reader {
	closer, _ := src.(io.Closer)
	return NewSourceReader(tokenizer.NewSource(src), closer, d)
}

// NewSourceReader creates a Reader over an already-decoded character source.
// closer, if not nil, is closed exactly once by Close.
func NewSourceReader(src Source, closer io.Closer, d Dialect) *Reader {
	d = d.snapshot()
	return &Reader{
		dialect:  d,
		tok:      tokenizer.New(src, d.tokenizerOptions()),
		closer:   closer,
		expected: -1,
	}
}

// Dialect returns a copy of the dialect the Reader was created with.
func (r *Reader) Dialect() Dialect {
	return r.dialect.snapshot()
}

// Header returns the header once it has been read, or nil.
func (r *Reader) Header() *Header {
	return r.header
}

// Line returns the physical line the reader has reached.
func (r *Reader) Line() int {
	return r.tok.Line()
}

// Read returns the next data row. It returns io.EOF when no rows remain.
//
// Header rows, empty rows (with SkipEmptyRows) and rows outside the
// BeginLine/EndLine window are consumed without being returned. Errors are
// sticky: once Read fails, every later call returns the same error.
func (r *Reader) Read() (*Row, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.closed {
		return nil, ErrClosed
	}
	if r.done {
		return nil, io.EOF
	}

	for {
		fields, line, err := r.tok.Next()
		if err == io.EOF {
			r.done = true
			return nil, io.EOF
		}
		if err != nil {
			r.err = &ParseError{StartLine: line, Line: r.tok.Line(), Err: err}
			return nil, r.err
		}

		if r.dialect.BeginLine > 0 && line < r.dialect.BeginLine {
			continue
		}
		if r.dialect.EndLine > 0 && line > r.dialect.EndLine {
			r.done = true
			return nil, io.EOF
		}

		if r.dialect.TrimFields {
			for i := range fields {
				fields[i] = strings.TrimSpace(fields[i])
			}
		}

		if r.dialect.SkipEmptyRows && len(fields) == 1 && fields[0] == "" {
			continue
		}

		if r.expected < 0 {
			r.expected = len(fields)
		} else if r.dialect.StrictFieldCount && len(fields) != r.expected {
			r.err = &FieldCountError{Line: line, Expected: r.expected, Actual: len(fields)}
			return nil, r.err
		}

		if r.dialect.HasHeader && r.header == nil {
			r.header = newHeader(fields, r.dialect.HeaderAliases)
			continue
		}

		return &Row{line: line, fields: fields, header: r.header}, nil
	}
}

// ReadAll reads all remaining rows. It does not close the Reader; see the
// package-level ReadAll for a version that does.
func (r *Reader) ReadAll() ([]*Row, error) {
	var rows []*Row
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// Close releases the underlying source. It is safe to call more than once;
// the source is closed only the first time and later calls return the same
// result.
func (r *Reader) Close() error {
	if r.closed {
		return r.closeErr
	}
	r.closed = true
	if r.closer != nil {
		r.closeErr = r.closer.Close()
	}
	return r.closeErr
}
