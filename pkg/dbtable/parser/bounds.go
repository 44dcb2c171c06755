package parser

// Area is a rectangular block of sheet cells. Coordinates are 1-based and
// inclusive, as in A1 notation.
type Area struct {
	// R1 is the start row.
	R1 int
	// C1 is the start column.
	C1 int
	// R2 is the end row.
	R2 int
	// C2 is the end column.
	C2 int
}

// Rows returns the number of rows spanned by the area.
func (a Area) Rows() int {
	return a.R2 - a.R1 + 1
}

// Cols returns the number of columns spanned by the area.
func (a Area) Cols() int {
	return a.C2 - a.C1 + 1
}

// FindDataBounds finds the bounding box of non-empty cells. ok is false
// when every cell is empty.
func FindDataBounds(rows [][]string) (area Area, ok bool) {
	for r, row := range rows {
		for c, text := range row {
			if text != "" {
				area, ok = area.extend(r+1, c+1, ok), true
			}
		}
	}
	return area, ok
}

// extend grows a to cover (row, col). An unset area becomes that one cell.
func (a Area) extend(row, col int, set bool) Area {
	if !set {
		return Area{R1: row, C1: col, R2: row, C2: col}
	}
	a.R1, a.R2 = min(a.R1, row), max(a.R2, row)
	a.C1, a.C2 = min(a.C1, col), max(a.C2, col)
	return a
}

// cellText returns the text at 1-based (row, col), or "" past the data.
func cellText(rows [][]string, row, col int) string {
	if row-1 >= len(rows) {
		return ""
	}
	r := rows[row-1]
	if col-1 >= len(r) {
		return ""
	}
	return r[col-1]
}
