package table

import "sort"

// SortSpec lists the column indices that order rows, primary key first.
// Null cells sort after every integer.
type SortSpec []int

// NewSortSpec creates a sort spec over the given columns.
func NewSortSpec(cols ...int) SortSpec {
	spec := make(SortSpec, len(cols))
	copy(spec, cols)
	return spec
}

// Compare returns -1, 0 or 1 depending on whether a orders before, with
// or after b. The first listed column where the rows differ decides.
func (s SortSpec) Compare(a, b Row) int {
	for _, c := range s {
		if cmp := compareCells(a.CellAt(c), b.CellAt(c)); cmp != 0 {
			return cmp
		}
	}
	return 0
}

// Less reports whether a orders strictly before b.
func (s SortSpec) Less(a, b Row) bool {
	return s.Compare(a, b) < 0
}

// rowSorter is used to sort the rows of a table by a SortSpec. It
// implements sort.Interface.
type rowSorter struct {
	rows []Row
	spec SortSpec
}

// Len implements sort.Interface.
func (rs *rowSorter) Len() int {
	return len(rs.rows)
}

// Swap implements sort.Interface. It swaps the given rows, mutating the
// table.
func (rs *rowSorter) Swap(i, j int) {
	rs.rows[i], rs.rows[j] = rs.rows[j], rs.rows[i]
}

// Less implements sort.Interface.
func (rs *rowSorter) Less(i, j int) bool {
	return rs.spec.Less(rs.rows[i], rs.rows[j])
}

// SortBy reorders the rows in place. Rows that compare equal under spec
// keep their relative order.
func (t *Table) SortBy(spec SortSpec) {
	if len(t.rows) > 0 {
		for _, c := range spec {
			t.checkColumn(c)
		}
	}
	sort.Stable(&rowSorter{rows: t.rows, spec: spec})
}
