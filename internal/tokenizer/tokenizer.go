// Package tokenizer splits a character stream into CSV rows.
//
// The Tokenizer reads runes through a fixed-size window and produces one
// row of raw fields per call to Next. It knows nothing about headers,
// empty-row policies or field-count checks; those live in pkg/csv.
//
// Quoting rules:
//   - Inside quotes every rune belongs to the field; a quote rune closes the quote.
//   - Outside quotes the separator ends a field, CR or LF ends the row, and a
//     quote rune opens quoting.
//   - Quote runes stay in the raw field text; one surrounding pair is removed
//     when the field is flushed. A doubled quote is not an escape.
//   - An unterminated quote at end of input is not an error.
package tokenizer

import (
	"io"
	"unicode/utf8"
)

const (
	cr = '\r'
	lf = '\n'

	defaultRowCapacity = 10
)

// Options configures a Tokenizer.
type Options struct {
	// Separator is the field separator. Default: ','
	Separator rune
	// Quote is the quote character. Default: '"'
	Quote rune
	// WindowSize is the read window capacity in runes. Default: DefaultWindowSize
	WindowSize int
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		Separator:  ',',
		Quote:      '"',
		WindowSize: DefaultWindowSize,
	}
}

// Tokenizer is a pull-based CSV scanner. It is not safe for concurrent use.
type Tokenizer struct {
	src   Source
	win   *window
	sep   rune
	quote rune

	field     []rune // accumulator for the field being built
	prev      rune   // last rune looked at, carried across rows for CRLF pairing
	inQuotes  bool
	line      int
	maxFields int
	finished  bool
}

// New creates a Tokenizer reading from src.
func New(src Source, opts Options) *Tokenizer {
	if opts.Separator == 0 {
		opts.Separator = ','
	}
	if opts.Quote == 0 {
		opts.Quote = '"'
	}
	return &Tokenizer{
		src:   src,
		win:   newWindow(opts.WindowSize),
		sep:   opts.Separator,
		quote: opts.Quote,
		field: make([]rune, 0, 64),
		prev:  utf8.RuneError,
	}
}

// Line returns the physical line the scanner is currently on (1-based).
func (t *Tokenizer) Line() int {
	return t.line
}

// MaxFields returns the largest field count produced so far.
func (t *Tokenizer) MaxFields() int {
	return t.maxFields
}

// Next scans one row. It returns the row's fields and the physical line the
// row started on. Once the input is exhausted it returns io.EOF. Any other
// error comes from the Source and leaves the Tokenizer unusable.
//
// The returned slice and strings are owned by the caller.
func (t *Tokenizer) Next() ([]string, int, error) {
	if t.finished {
		return nil, t.line, io.EOF
	}
	t.line++
	start := t.line

	capacity := t.maxFields
	if capacity == 0 {
		capacity = defaultRowCapacity
	}
	fields := make([]string, 0, capacity)

	if err := t.scan(&fields); err != nil {
		return nil, start, err
	}
	if len(fields) == 0 {
		return nil, start, io.EOF
	}
	if len(fields) > t.maxFields {
		t.maxFields = len(fields)
	}
	return fields, start, nil
}

// scan runs the state machine until a row terminator or end of input.
func (t *Tokenizer) scan(fields *[]string) error {
	for {
		if t.win.exhausted() {
			t.field = t.win.drain(t.field)
			err := t.win.fill(t.src)
			if err == io.EOF {
				t.finished = true
				if t.prev == t.sep || len(t.field) > 0 {
					*fields = append(*fields, t.flush())
				}
				return nil
			}
			if err != nil {
				return err
			}
		}

		c := t.win.peek()

		if t.inQuotes {
			if c == t.quote {
				t.inQuotes = false
			} else if (c == cr || c == lf) && t.prev != cr {
				t.line++
			}
			t.win.extend()
			t.prev = c
			continue
		}

		switch c {
		case t.sep:
			t.field = t.win.drain(t.field)
			t.win.skip()
			*fields = append(*fields, t.flush())
		case t.quote:
			t.inQuotes = true
			t.win.extend()
		case cr:
			t.field = t.win.drain(t.field)
			t.win.skip()
			*fields = append(*fields, t.flush())
			t.prev = c
			return nil
		case lf:
			if t.prev != cr {
				t.field = t.win.drain(t.field)
				t.win.skip()
				*fields = append(*fields, t.flush())
				t.prev = c
				return nil
			}
			// Second half of CRLF; the row already ended on the CR.
			t.win.skip()
		default:
			t.win.extend()
		}
		t.prev = c
	}
}

// flush turns the accumulator into a field value and resets it.
func (t *Tokenizer) flush() string {
	f := t.field
	for len(f) > 0 && (f[len(f)-1] == cr || f[len(f)-1] == lf) {
		f = f[:len(f)-1]
	}
	if len(f) >= 2 && f[0] == t.quote && f[len(f)-1] == t.quote {
		f = f[1 : len(f)-1]
	}
	s := string(f)
	t.field = t.field[:0]
	return s
}
