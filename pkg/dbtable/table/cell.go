// Package table implements an in-memory grid of nullable integer cells
// with structural edits, per-column aggregation and multi-key sorting.
package table

import (
	"fmt"
	"strconv"
)

// Cell is a single table entry: an integer or null.
// The zero value is the null cell.
type Cell struct {
	value int
	valid bool
}

// Null is the cell representing missing data.
var Null = Cell{}

// Int returns a cell holding v.
func Int(v int) Cell {
	return Cell{value: v, valid: true}
}

// IsNull reports whether the cell holds no data.
func (c Cell) IsNull() bool {
	return !c.valid
}

// Value returns the cell's integer and whether it is present.
func (c Cell) Value() (int, bool) {
	return c.value, c.valid
}

// Equal reports whether two cells hold the same value, or are both null.
func (c Cell) Equal(o Cell) bool {
	return c.valid == o.valid && c.value == o.value
}

// String returns the cell's decimal value, or "." for null.
func (c Cell) String() string {
	if !c.valid {
		return "."
	}
	return strconv.Itoa(c.value)
}

// MarshalJSON encodes null cells as JSON null and values as numbers.
func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(c.value)), nil
}

// compareCells orders cells by value with null after every integer.
func compareCells(a, b Cell) int {
	switch {
	case !a.valid && !b.valid:
		return 0
	case !a.valid:
		return 1
	case !b.valid:
		return -1
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	}
	return 0
}

// panicf is a composition of fmt.Sprintf and panic. It is used for
// violated preconditions such as out-of-range indices.
func panicf(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}
