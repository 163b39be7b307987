package csv

import (
	"context"
	"io"
)

// Visitor receives rows from ForEach. Return true to continue, false to stop.
type Visitor func(row *Row) bool

// ForEach reads every row from r and passes it to visit until the input is
// exhausted, visit returns false, or an error occurs.
//
// ForEach consumes r: it closes r before returning on every path. A read
// error is returned as is; a close error is returned only when nothing
// else failed.
//
// Example:
//
//	r := csv.NewReader(file, csv.DefaultDialect())
//	err := csv.ForEach(r, func(row *csv.Row) bool {
//	    fmt.Println(row.Line(), row.Fields())
//	    return true
//	})
func ForEach(r *Reader, visit Visitor) error {
	return ForEachContext(context.Background(), r, visit)
}

// ForEachContext is like ForEach but also stops, returning ctx.Err(), when
// ctx is cancelled. The context is checked before each row is read.
func ForEachContext(ctx context.Context, r *Reader, visit Visitor) (err error) {
	defer func() {
		if cerr := r.Close(); err == nil {
			err = cerr
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !visit(row) {
			return nil
		}
	}
}

// ReadAll reads every row from r and closes it.
//
// Example:
//
//	rows, err := csv.ReadAll(csv.NewReader(strings.NewReader("a,b\n1,2"), csv.DefaultDialect()))
//	// rows[0].Fields() == []string{"a", "b"}
func ReadAll(r *Reader) ([]*Row, error) {
	var rows []*Row
	err := ForEach(r, func(row *Row) bool {
		rows = append(rows, row)
		return true
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Scanner provides a streaming interface for reading CSV rows one at a time.
// Rows are read lazily from the underlying Reader, so memory use stays
// bounded for large inputs.
//
// Example usage:
//
//	file, _ := os.Open("data.csv")
//
//	d := csv.DefaultDialect()
//	d.HasHeader = true
//	scanner := csv.NewScanner(file, d)
//	for scanner.Scan() {
//	    row := scanner.Row()
//	    name, _, _ := row.GetByName("name")
//	    fmt.Println(name)
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
//
// The Scanner closes its Reader, and through it the source, once Scan
// returns false. Call Close to stop early.
type Scanner struct {
	reader *Reader
	row    *Row
	err    error
	done   bool
}

// NewScanner creates a new Scanner that reads CSV from the given io.Reader.
func NewScanner(src io.Reader, d Dialect) *Scanner {
	return &Scanner{reader: NewReader(src, d)}
}

// NewReaderScanner creates a Scanner over an existing Reader.
func NewReaderScanner(r *Reader) *Scanner {
	return &Scanner{reader: r}
}

// Scan advances the scanner to the next row.
// It returns false when there are no more rows or an error occurs.
// After Scan returns false, the Err method will return any error that occurred.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	row, err := s.reader.Read()
	if err != nil {
		s.row = nil
		if err != io.EOF {
			s.err = err
		}
		s.finish()
		return false
	}
	s.row = row
	return true
}

// Row returns the current row.
// This should only be called after Scan() returns true.
func (s *Scanner) Row() *Row {
	return s.row
}

// Err returns the error, if any, that was encountered during scanning.
// It returns nil if no error occurred or at EOF.
func (s *Scanner) Err() error {
	return s.err
}

// Header returns the header once it has been read, or nil.
func (s *Scanner) Header() *Header {
	return s.reader.Header()
}

// Close stops the scan and releases the source. It returns the same error
// as Err, so it may be called whether or not Scan has returned false.
func (s *Scanner) Close() error {
	if !s.done {
		s.finish()
	}
	return s.err
}

func (s *Scanner) finish() {
	s.done = true
	if err := s.reader.Close(); err != nil && s.err == nil {
		s.err = err
	}
}
