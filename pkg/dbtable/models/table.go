// Package models defines serializable views of tables.
package models

import "github.com/ukaji3/dbtable-go/pkg/dbtable/table"

// TableView represents a table for JSON output.
type TableView struct {
	// Rows is the number of rows.
	Rows int `json:"rows"`
	// Cols is the number of columns.
	Cols int `json:"cols"`
	// Data holds the cells row by row; null cells encode as null.
	Data [][]table.Cell `json:"data"`
}

// NewTableView copies the cells of t into a TableView.
func NewTableView(t *table.Table) TableView {
	view := TableView{
		Rows: t.RowCount(),
		Cols: t.ColumnCount(),
		Data: make([][]table.Cell, t.RowCount()),
	}
	for i := range view.Data {
		view.Data[i] = t.RowAt(i).Cells()
	}
	return view
}
