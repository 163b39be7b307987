// Package csv provides AST rendering to CSV bytes.
//
// Render is the inverse of Data.ToAST: it writes an array of records back
// out as CSV text in a given dialect.
package csv

import (
	"bytes"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node of records to CSV bytes.
//
// The node should be the result of Data.ToAST or Row.ToAST. A single
// record (an array of literal fields) renders as one line. Fields are
// quoted with the Writer rules; lines end in LF.
//
// Example:
//
//	data, _ := csv.Parse("name,age\nAlice,30\n", csv.DefaultDialect())
//	out, _ := csv.Render(data.ToAST(), csv.DefaultDialect())
//	// out: name,age\nAlice,30\n
func Render(node ast.SchemaNode, d Dialect) ([]byte, error) {
	if node == nil {
		return []byte{}, nil
	}

	if arr, ok := node.(*ast.ArrayDataNode); ok && isRecord(arr) {
		node = ast.NewArrayDataNode([]ast.SchemaNode{arr}, ast.ZeroPosition())
	}

	data, err := FromAST(node, false)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := NewWriter(&buf, d)
	for _, row := range data.rows {
		if err := w.WriteRow(row); err != nil {
			return nil, err
		}
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// isRecord reports whether node holds fields rather than records.
func isRecord(node *ast.ArrayDataNode) bool {
	elements := node.Elements()
	if len(elements) == 0 {
		return false
	}
	_, ok := elements[0].(*ast.LiteralNode)
	return ok
}
