// Package output renders tables as text, JSON and xlsx.
package output

import (
	"fmt"
	"strings"

	"github.com/ukaji3/dbtable-go/pkg/dbtable/table"
)

const (
	// TableCellWidth is the right-aligned field width used by FormatTable.
	TableCellWidth = 6
	// ColumnCellWidth is the left-aligned field width used by FormatColumn.
	ColumnCellWidth = 2
)

// FormatRow joins the cells of r with single spaces. Null cells print as
// ".". There is no trailing space or newline.
func FormatRow(r table.Row) string {
	parts := make([]string, r.Len())
	for i := range parts {
		parts[i] = r.CellAt(i).String()
	}
	return strings.Join(parts, " ")
}

// FormatTable prints every cell right-aligned in a field of
// TableCellWidth characters, one line per row.
func FormatTable(t *table.Table) string {
	var b strings.Builder
	for i := 0; i < t.RowCount(); i++ {
		for j := 0; j < t.ColumnCount(); j++ {
			fmt.Fprintf(&b, "%*s", TableCellWidth, t.CellAt(i, j).String())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatColumn prints the cells of column c left-aligned in fields of
// ColumnCellWidth characters, all on one line without a newline.
func FormatColumn(t *table.Table, c int) string {
	var b strings.Builder
	for _, cell := range t.Column(c) {
		fmt.Fprintf(&b, "%-*s", ColumnCellWidth, cell.String())
	}
	return b.String()
}

// FormatSummary reports the shape of the table and its number of
// non-null cells.
func FormatSummary(t *table.Table) string {
	return fmt.Sprintf("(#rows, #cols, #data) = (%d, %d, %d)",
		t.RowCount(), t.ColumnCount(), t.NonNullCount())
}

// FormatStats renders the aggregates of one column, one per line. NaN is
// printed for aggregates of a column without data.
func FormatStats(t *table.Table, c int) string {
	stats := t.ColumnStats(c)
	lines := []string{
		fmt.Sprintf("count:    %d", stats.Count),
		fmt.Sprintf("distinct: %d", t.ColumnDistinctCount(c)),
		fmt.Sprintf("sum:      %g", stats.Sum),
		fmt.Sprintf("min:      %g", stats.Min),
		fmt.Sprintf("max:      %g", stats.Max),
		fmt.Sprintf("average:  %g", stats.Average),
	}
	return strings.Join(lines, "\n")
}
