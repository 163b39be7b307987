package csv_test

import (
	"errors"
	"io"
	"testing"

	"github.com/shapestone/shape-csvstream/pkg/csv"
)

func TestParseError(t *testing.T) {
	t.Run("same line", func(t *testing.T) {
		err := &csv.ParseError{StartLine: 5, Line: 5, Err: io.ErrUnexpectedEOF}

		got := err.Error()
		want := "read error on line 5: unexpected EOF"
		if got != want {
			t.Errorf("ParseError.Error() = %q, want %q", got, want)
		}
	})

	t.Run("different lines", func(t *testing.T) {
		err := &csv.ParseError{StartLine: 3, Line: 5, Err: errors.New("connection reset")}

		got := err.Error()
		want := "read error on line 5 (started line 3): connection reset"
		if got != want {
			t.Errorf("ParseError.Error() = %q, want %q", got, want)
		}
	})

	t.Run("unwrap", func(t *testing.T) {
		var err error = &csv.ParseError{StartLine: 1, Line: 1, Err: io.ErrUnexpectedEOF}
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Error("errors.Is(ParseError, io.ErrUnexpectedEOF) = false")
		}
	})
}

func TestFieldCountError(t *testing.T) {
	var err error = &csv.FieldCountError{Line: 2, Expected: 2, Actual: 3}

	want := "record on line 2: wrong number of fields (got 3, expected 2)"
	if got := err.Error(); got != want {
		t.Errorf("FieldCountError.Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, csv.ErrFieldCount) {
		t.Error("errors.Is(FieldCountError, ErrFieldCount) = false")
	}
}

func TestDialect_Validate(t *testing.T) {
	tests := []struct {
		name      string
		dialect   csv.Dialect
		wantField string
	}{
		{name: "default", dialect: csv.DefaultDialect()},
		{name: "zero value", dialect: csv.Dialect{}},
		{name: "tab", dialect: csv.Dialect{Separator: '\t'}},
		{name: "newline separator", dialect: csv.Dialect{Separator: '\n'}, wantField: "Separator"},
		{name: "CR quote", dialect: csv.Dialect{Quote: '\r'}, wantField: "Quote"},
		{name: "separator equals quote", dialect: csv.Dialect{Separator: '|', Quote: '|'}, wantField: "Quote"},
		{name: "negative line", dialect: csv.Dialect{BeginLine: -1}, wantField: "BeginLine"},
		{name: "inverted window", dialect: csv.Dialect{BeginLine: 5, EndLine: 2}, wantField: "EndLine"},
		{name: "open-ended window", dialect: csv.Dialect{BeginLine: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dialect.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			var oe *csv.OptionsError
			if !errors.As(err, &oe) {
				t.Fatalf("Validate() error = %v, want *OptionsError", err)
			}
			if oe.Field != tt.wantField {
				t.Errorf("OptionsError.Field = %q, want %q", oe.Field, tt.wantField)
			}
		})
	}
}
