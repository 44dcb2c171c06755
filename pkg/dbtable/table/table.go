package table

// Table is an ordered sequence of rows treated as a 2-D grid. Row order
// is insertion order until the table is sorted. Every structural edit
// keeps the grid rectangular. A Table is not safe for concurrent use.
type Table struct {
	rows []Row
}

// New creates an empty table.
func New() *Table {
	return &Table{}
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnCount returns the length of the first row, or 0 when the table
// has no rows.
func (t *Table) ColumnCount() int {
	if len(t.rows) == 0 {
		return 0
	}
	return t.rows[0].Len()
}

// NonNullCount returns the number of non-null cells in the whole table.
func (t *Table) NonNullCount() int {
	n := 0
	for _, row := range t.rows {
		for _, cell := range row.cells {
			if cell.valid {
				n++
			}
		}
	}
	return n
}

// RowAt returns a copy of row i.
func (t *Table) RowAt(i int) Row {
	t.checkRow(i)
	return t.rows[i].clone()
}

// CellAt returns the cell at row r, column c.
func (t *Table) CellAt(r, c int) Cell {
	t.checkRow(r)
	return t.rows[r].CellAt(c)
}

// Column returns the cells of column c in row order.
func (t *Table) Column(c int) []Cell {
	t.checkColumn(c)
	cells := make([]Cell, len(t.rows))
	for i := range t.rows {
		cells[i] = t.rows[i].cells[c]
	}
	return cells
}

// Clear removes every row.
func (t *Table) Clear() {
	t.rows = nil
}

// AppendRow adds a copy of row at the end of the table. Once the table
// has rows, the new row must be exactly ColumnCount cells long.
func (t *Table) AppendRow(row Row) {
	if len(t.rows) > 0 && row.Len() != t.ColumnCount() {
		panicf(
			"wrong number of cells in table row (%d != %d)",
			row.Len(), t.ColumnCount(),
		)
	}
	t.rows = append(t.rows, row.clone())
}

// AppendColumn adds a column on the right of the table. values must hold
// exactly one cell per row; values[i] goes to row i.
func (t *Table) AppendColumn(values []Cell) {
	if len(values) != len(t.rows) {
		panicf(
			"wrong number of cells in table column (%d != %d)",
			len(values), len(t.rows),
		)
	}
	for i := range t.rows {
		t.rows[i].AppendCell(values[i])
	}
}

// RemoveRowAt removes row i. Note that #0 is the first row.
func (t *Table) RemoveRowAt(i int) {
	t.checkRow(i)
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
}

// RemoveColumnAt removes column c from every row.
func (t *Table) RemoveColumnAt(c int) {
	t.checkColumn(c)
	for i := range t.rows {
		t.rows[i].RemoveCellAt(c)
	}
}

func (t *Table) checkRow(i int) {
	if i < 0 || i >= len(t.rows) {
		panicf("row index %d out of range [0, %d)", i, len(t.rows))
	}
}

func (t *Table) checkColumn(c int) {
	if c < 0 || c >= t.ColumnCount() {
		panicf("column index %d out of range [0, %d)", c, t.ColumnCount())
	}
}
