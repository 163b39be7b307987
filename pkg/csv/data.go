// Package csv provides Data, an in-memory set of parsed rows.
//
// Data is what the whole-input helpers return:
//
//	d := csv.DefaultDialect()
//	d.HasHeader = true
//	data, err := csv.Parse("name,age\nAlice,30\nBob,25", d)
//	row, _ := data.Row(0)
//	age, _, _ := row.GetByName("age") // "30"
//
// # AST Conversion
//
// Data converts to and from Shape's unified AST, so CSV input can feed
// other Shape tooling:
//
//	node := data.ToAST()           // *ast.ArrayDataNode of records
//	back, _ := csv.FromAST(node, true)
package csv

import (
	"fmt"
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Data holds every row of an input together with its header.
type Data struct {
	header *Header
	rows   []*Row
}

// Read reads all rows from src with the given dialect. If src is an
// io.Closer it is closed before Read returns.
func Read(src io.Reader, d Dialect) (*Data, error) {
	r := NewReader(src, d)
	rows, err := ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Data{header: r.Header(), rows: rows}, nil
}

// Header returns the header, or nil when the input had none.
func (d *Data) Header() *Header {
	return d.header
}

// Rows returns the data rows.
func (d *Data) Rows() []*Row {
	return d.rows
}

// Len returns the number of data rows.
func (d *Data) Len() int {
	return len(d.rows)
}

// Row returns the data row at index, or (nil, false) if out of range.
func (d *Data) Row(index int) (*Row, bool) {
	if index < 0 || index >= len(d.rows) {
		return nil, false
	}
	return d.rows[index], true
}

// ============================================================================
// AST Conversion
// ============================================================================

// ToAST converts the Data to an AST ArrayDataNode. When a header is present
// the whole header row forms the first record.
func (d *Data) ToAST() *ast.ArrayDataNode {
	records := make([]ast.SchemaNode, 0, len(d.rows)+1)

	if d.header != nil {
		names := d.header.Fields()
		nameNodes := make([]ast.SchemaNode, len(names))
		for i, name := range names {
			nameNodes[i] = ast.NewLiteralNode(name, ast.ZeroPosition())
		}
		records = append(records, ast.NewArrayDataNode(nameNodes, ast.ZeroPosition()))
	}

	for _, row := range d.rows {
		records = append(records, row.ToAST())
	}

	return ast.NewArrayDataNode(records, ast.ZeroPosition())
}

// ToAST converts the row to an AST ArrayDataNode of literal fields,
// positioned at the row's starting line.
func (r *Row) ToAST() *ast.ArrayDataNode {
	pos := ast.NewPosition(0, r.line, 1)
	fields := make([]ast.SchemaNode, len(r.fields))
	for i, f := range r.fields {
		fields[i] = ast.NewLiteralNode(f, pos)
	}
	return ast.NewArrayDataNode(fields, pos)
}

// FromAST creates Data from an AST ArrayDataNode of records. With hasHeader
// the first record becomes the header. Row lines are numbered from 1 in
// record order.
func FromAST(node ast.SchemaNode, hasHeader bool) (*Data, error) {
	arrayNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}

	data := &Data{}
	for i, elem := range arrayNode.Elements() {
		recordNode, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("expected record to be *ast.ArrayDataNode, got %T", elem)
		}

		fields := make([]string, 0, recordNode.Len())
		for _, fieldNode := range recordNode.Elements() {
			literalNode, ok := fieldNode.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("expected field to be *ast.LiteralNode, got %T", fieldNode)
			}
			value, ok := literalNode.Value().(string)
			if !ok {
				return nil, fmt.Errorf("expected field value to be string, got %T", literalNode.Value())
			}
			fields = append(fields, value)
		}

		if hasHeader && data.header == nil {
			data.header = newHeader(fields, nil)
			continue
		}
		data.rows = append(data.rows, &Row{line: i + 1, fields: fields, header: data.header})
	}

	return data, nil
}
