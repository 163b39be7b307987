package csv

import "strings"

// Header maps column names to column indexes.
//
// A Header is built once from the first row of a reader with
// Dialect.HasHeader set and is shared, read-only, by every row that reader
// returns. The first occurrence of a name wins; blank and duplicate names
// are left out of the index but kept in Fields, so the header row still
// lines up with the data rows.
type Header struct {
	fields []string // the header row, aliases applied
	names  []string
	index  map[string]int
}

// newHeader builds a Header from the raw header row.
func newHeader(fields []string, aliases map[string]string) *Header {
	h := &Header{
		fields: make([]string, len(fields)),
		names:  make([]string, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, name := range fields {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		h.fields[i] = name
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, dup := h.index[name]; dup {
			continue
		}
		h.index[name] = i
		h.names = append(h.names, name)
	}
	return h
}

// NewHeader creates a Header from column names, applying the same rules as
// a header row read from input.
func NewHeader(names []string) *Header {
	return newHeader(names, nil)
}

// Index returns the column index for name.
func (h *Header) Index(name string) (int, bool) {
	if h == nil {
		return 0, false
	}
	i, ok := h.index[name]
	return i, ok
}

// Fields returns the whole header row, one entry per column, including
// blank and duplicate names. Use it when writing the header back out.
func (h *Header) Fields() []string {
	if h == nil {
		return nil
	}
	fields := make([]string, len(h.fields))
	copy(fields, h.fields)
	return fields
}

// Names returns the indexed column names in column order.
func (h *Header) Names() []string {
	if h == nil {
		return nil
	}
	names := make([]string, len(h.names))
	copy(names, h.names)
	return names
}

// Len returns the number of kept column names.
func (h *Header) Len() int {
	if h == nil {
		return 0
	}
	return len(h.names)
}
