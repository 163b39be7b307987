package tokenizer

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

type row struct {
	Line   int
	Fields []string
}

// tokenizeAll drains a Tokenizer over input using the given window size and
// source chunk size.
func tokenizeAll(t *testing.T, input string, opts Options, chunk int) []row {
	t.Helper()
	tok := New(&RuneSlice{Runes: []rune(input), Chunk: chunk}, opts)
	var rows []row
	for {
		fields, line, err := tok.Next()
		if err == io.EOF {
			return rows
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		rows = append(rows, row{Line: line, Fields: fields})
	}
}

// TestNext_Rows tests the scanner state machine on complete inputs.
func TestNext_Rows(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  []row
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "single field",
			input: "abc",
			want:  []row{{1, []string{"abc"}}},
		},
		{
			name:  "simple rows",
			input: "a,b,c\nd,e,f\n",
			want: []row{
				{1, []string{"a", "b", "c"}},
				{2, []string{"d", "e", "f"}},
			},
		},
		{
			name:  "trailing separator at end of input",
			input: "a,b,",
			want:  []row{{1, []string{"a", "b", ""}}},
		},
		{
			name:  "only separators",
			input: ",,",
			want:  []row{{1, []string{"", "", ""}}},
		},
		{
			name:  "blank lines are single empty fields",
			input: "x\n\n\ny\n",
			want: []row{
				{1, []string{"x"}},
				{2, []string{""}},
				{3, []string{""}},
				{4, []string{"y"}},
			},
		},
		{
			name:  "CRLF terminators",
			input: "a,b\r\nc,d",
			want: []row{
				{1, []string{"a", "b"}},
				{2, []string{"c", "d"}},
			},
		},
		{
			name:  "lone CR terminates the row",
			input: "a,b\rc,d",
			want: []row{
				{1, []string{"a", "b"}},
				{2, []string{"c", "d"}},
			},
		},
		{
			name:  "CRLF blank line",
			input: "a\r\n\r\nb",
			want: []row{
				{1, []string{"a"}},
				{2, []string{""}},
				{3, []string{"b"}},
			},
		},
		{
			name:  "quoted separator",
			input: `"a,b",c`,
			want:  []row{{1, []string{"a,b", "c"}}},
		},
		{
			name:  "quoted newline spans physical lines",
			input: "\"line1\nline2\",x\nnext\n",
			want: []row{
				{1, []string{"line1\nline2", "x"}},
				{3, []string{"next"}},
			},
		},
		{
			name:  "quoted CRLF counts one line",
			input: "\"a\r\nb\"\r\nc\r\n",
			want: []row{
				{1, []string{"a\r\nb"}},
				{3, []string{"c"}},
			},
		},
		{
			name:  "doubled quote is not an escape",
			input: `"say ""hi""",x`,
			want:  []row{{1, []string{`say ""hi""`, "x"}}},
		},
		{
			name:  "empty quoted field",
			input: `"",b`,
			want:  []row{{1, []string{"", "b"}}},
		},
		{
			name:  "quote inside unquoted field is kept",
			input: `ab"c,d",e`,
			want:  []row{{1, []string{`ab"c,d"`, "e"}}},
		},
		{
			name:  "unterminated quote is kept verbatim",
			input: "a,\"bc\n",
			want:  []row{{1, []string{"a", "\"bc"}}},
		},
		{
			name:  "lone quote field",
			input: `"`,
			want:  []row{{1, []string{`"`}}},
		},
		{
			name:  "custom separator and quote",
			input: "'a;b';c\n1;2\n",
			opts:  Options{Separator: ';', Quote: '\''},
			want: []row{
				{1, []string{"a;b", "c"}},
				{2, []string{"1", "2"}},
			},
		},
		{
			name:  "tab separated",
			input: "a\tb\n",
			opts:  Options{Separator: '\t'},
			want:  []row{{1, []string{"a", "b"}}},
		},
		{
			name:  "multibyte runes",
			input: "名前,年齢\n太郎,30\n",
			want: []row{
				{1, []string{"名前", "年齢"}},
				{2, []string{"太郎", "30"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenizeAll(t, tt.input, tt.opts, 0)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestNext_WindowBoundaries checks that the window size and source chunking
// never change the result.
func TestNext_WindowBoundaries(t *testing.T) {
	inputs := []string{
		"a,b,c\nd,e,f\n",
		"a,b\r\nc,d\r\n",
		"\"quoted, with sep\",\"multi\r\nline\"\r\nplain,row\n",
		"x\n\n\ny\n",
		"long-field-" + strings.Repeat("z", 5000) + ",tail\n",
		"\"unterminated,\nrest",
		"a,\r\n,b\r\r\n",
		"名前,\"年\n齢\"\n",
	}
	sizes := []int{1, 2, 3, 4, 7, DefaultWindowSize}

	for _, input := range inputs {
		want := tokenizeAll(t, input, Options{WindowSize: len(input) + 1}, 0)
		for _, size := range sizes {
			for _, chunk := range []int{0, 1, 3} {
				got := tokenizeAll(t, input, Options{WindowSize: size}, chunk)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("window=%d chunk=%d input=%.20q (-want +got):\n%s", size, chunk, input, diff)
				}
			}
		}
	}
}

// TestNewSource_OneByteReader feeds UTF-8 one byte at a time.
func TestNewSource_OneByteReader(t *testing.T) {
	input := "名前,\"a,b\"\r\nc,d\n"
	tok := New(NewSource(iotest.OneByteReader(strings.NewReader(input))), Options{WindowSize: 2})

	var got [][]string
	for {
		fields, _, err := tok.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		got = append(got, fields)
	}

	want := [][]string{{"名前", "a,b"}, {"c", "d"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

// TestNext_SourceError tests that a failing source surfaces its error.
func TestNext_SourceError(t *testing.T) {
	boom := errors.New("boom")
	src := NewSource(io.MultiReader(strings.NewReader("a,b\nc"), iotest.ErrReader(boom)))
	tok := New(src, DefaultOptions())

	fields, line, err := tok.Next()
	if err != nil {
		t.Fatalf("first Next() error = %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, fields); diff != "" || line != 1 {
		t.Fatalf("first row = %v at line %d", fields, line)
	}

	_, line, err = tok.Next()
	if !errors.Is(err, boom) {
		t.Fatalf("second Next() error = %v, want %v", err, boom)
	}
	if line != 2 {
		t.Errorf("error line = %d, want 2", line)
	}
}

// TestNext_AfterEOF tests that the tokenizer stays finished.
func TestNext_AfterEOF(t *testing.T) {
	tok := New(&RuneSlice{Runes: []rune("a")}, DefaultOptions())
	if _, _, err := tok.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, _, err := tok.Next(); err != io.EOF {
			t.Fatalf("Next() after end = %v, want io.EOF", err)
		}
	}
}

// TestMaxFields tests the field count hint.
func TestMaxFields(t *testing.T) {
	tok := New(&RuneSlice{Runes: []rune("a\nb,c,d\ne,f\n")}, DefaultOptions())
	for {
		if _, _, err := tok.Next(); err != nil {
			break
		}
	}
	if got := tok.MaxFields(); got != 3 {
		t.Errorf("MaxFields() = %d, want 3", got)
	}
}

// TestNext_RowsAreIndependent tests that returned fields do not alias the window.
func TestNext_RowsAreIndependent(t *testing.T) {
	tok := New(&RuneSlice{Runes: []rune("aaaa,bbbb\ncccc,dddd\n")}, Options{WindowSize: 4})
	first, _, err := tok.Next()
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := tok.Next(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"aaaa", "bbbb"}, first); diff != "" {
		t.Errorf("first row changed after second Next (-want +got):\n%s", diff)
	}
}
