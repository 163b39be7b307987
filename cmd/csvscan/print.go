package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/shapestone/shape-csvstream/pkg/csv"
)

// Output formats for cat and head.
const (
	formatTable = "table"
	formatCSV   = "csv"
	formatTSV   = "tsv"
	formatJSON  = "json"
)

// rowPrinter renders rows in one output format. header is called at most
// once, before the first row.
type rowPrinter interface {
	header(h *csv.Header) error
	row(r *csv.Row) error
	close() error
}

func newPrinter(format string, w io.Writer) (rowPrinter, error) {
	switch format {
	case formatTable:
		return &tablePrinter{table: tablewriter.NewWriter(w)}, nil
	case formatCSV:
		return &csvPrinter{w: csv.NewWriter(w, csv.DefaultDialect())}, nil
	case formatTSV:
		d := csv.DefaultDialect()
		d.Separator = '\t'
		return &csvPrinter{w: csv.NewWriter(w, d)}, nil
	case formatJSON:
		return &jsonPrinter{enc: json.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: expected table, csv, tsv or json", format)
	}
}

// tablePrinter buffers rows in a tablewriter table and renders on close.
type tablePrinter struct {
	table *tablewriter.Table
}

func (p *tablePrinter) header(h *csv.Header) error {
	p.table.Header(cells(h.Fields())...)
	return nil
}

func (p *tablePrinter) row(r *csv.Row) error {
	return p.table.Append(cells(r.Fields())...)
}

func (p *tablePrinter) close() error {
	return p.table.Render()
}

func cells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// csvPrinter re-encodes rows with a csv.Writer.
type csvPrinter struct {
	w *csv.Writer
}

func (p *csvPrinter) header(h *csv.Header) error {
	return p.w.Write(h.Fields())
}

func (p *csvPrinter) row(r *csv.Row) error {
	return p.w.WriteRow(r)
}

func (p *csvPrinter) close() error {
	return p.w.Flush()
}

// jsonPrinter writes one JSON value per row: an object keyed by header name
// when a header is present, otherwise an array of fields.
type jsonPrinter struct {
	enc *json.Encoder
}

func (p *jsonPrinter) header(*csv.Header) error {
	return nil
}

func (p *jsonPrinter) row(r *csv.Row) error {
	if r.Header() == nil {
		return p.enc.Encode(r.Fields())
	}
	m, err := r.Map()
	if err != nil {
		return err
	}
	return p.enc.Encode(m)
}

func (p *jsonPrinter) close() error {
	return nil
}
