package table

// Row is an ordered sequence of cells. Inside a Table every row has the
// same length as the table's column count.
type Row struct {
	cells []Cell
}

// NewRow creates a row holding a copy of cells.
func NewRow(cells ...Cell) Row {
	r := Row{cells: make([]Cell, len(cells))}
	copy(r.cells, cells)
	return r
}

// Len returns the number of cells in the row.
func (r Row) Len() int {
	return len(r.cells)
}

// CellAt returns the cell at position i. An index outside the row
// panics.
func (r Row) CellAt(i int) Cell {
	if i < 0 || i >= len(r.cells) {
		panicf("cell index %d out of range [0, %d)", i, len(r.cells))
	}
	return r.cells[i]
}

// AppendCell adds v at the end of the row.
func (r *Row) AppendCell(v Cell) {
	r.cells = append(r.cells, v)
}

// RemoveCellAt removes the cell at position i and shifts the following
// cells left by one. An index outside the row panics.
func (r *Row) RemoveCellAt(i int) {
	if i < 0 || i >= len(r.cells) {
		panicf("cell index %d out of range [0, %d)", i, len(r.cells))
	}
	r.cells = append(r.cells[:i], r.cells[i+1:]...)
}

// Cells returns a copy of the row's cells.
func (r Row) Cells() []Cell {
	cells := make([]Cell, len(r.cells))
	copy(cells, r.cells)
	return cells
}

// Equal reports whether both rows hold equal cells in the same order.
func (r Row) Equal(o Row) bool {
	if len(r.cells) != len(o.cells) {
		return false
	}
	for i := range r.cells {
		if !r.cells[i].Equal(o.cells[i]) {
			return false
		}
	}
	return true
}

func (r Row) clone() Row {
	return NewRow(r.cells...)
}
