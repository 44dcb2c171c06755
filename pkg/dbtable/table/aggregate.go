package table

import "math"

// Stats holds the aggregates of one column. Null cells are ignored. When
// Count is 0, Sum, Min, Max and Average are NaN.
type Stats struct {
	Count   int
	Sum     float64
	Min     float64
	Max     float64
	Average float64
}

// accumulator folds non-null cells into running aggregates.
type accumulator struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func newAccumulator() *accumulator {
	return &accumulator{
		min: math.Inf(1),
		max: math.Inf(-1),
	}
}

func (acc *accumulator) apply(c Cell) {
	if !c.valid {
		return
	}
	v := float64(c.value)
	acc.count++
	acc.sum += v
	acc.min = math.Min(acc.min, v)
	acc.max = math.Max(acc.max, v)
}

func (acc *accumulator) stats() Stats {
	if acc.count == 0 {
		nan := math.NaN()
		return Stats{Sum: nan, Min: nan, Max: nan, Average: nan}
	}
	return Stats{
		Count:   acc.count,
		Sum:     acc.sum,
		Min:     acc.min,
		Max:     acc.max,
		Average: acc.sum / float64(acc.count),
	}
}

// ColumnStats computes every aggregate of column c in a single pass. A
// table without rows reports no data for any column.
func (t *Table) ColumnStats(c int) Stats {
	acc := newAccumulator()
	if len(t.rows) > 0 {
		t.checkColumn(c)
	}
	for i := range t.rows {
		acc.apply(t.rows[i].cells[c])
	}
	return acc.stats()
}

// ColumnMax returns the largest non-null value of column c, or NaN.
func (t *Table) ColumnMax(c int) float64 {
	return t.ColumnStats(c).Max
}

// ColumnMin returns the smallest non-null value of column c, or NaN.
func (t *Table) ColumnMin(c int) float64 {
	return t.ColumnStats(c).Min
}

// ColumnSum returns the sum of the non-null values of column c. It is NaN
// rather than 0 when the column holds no data.
func (t *Table) ColumnSum(c int) float64 {
	return t.ColumnStats(c).Sum
}

// ColumnNonNullCount returns how many cells of column c are not null.
// Duplicated values are counted every time.
func (t *Table) ColumnNonNullCount(c int) int {
	return t.ColumnStats(c).Count
}

// ColumnAverage returns ColumnSum(c) / ColumnNonNullCount(c), or NaN.
func (t *Table) ColumnAverage(c int) float64 {
	return t.ColumnStats(c).Average
}

// ColumnDistinctCount returns the number of distinct non-null values in
// column c.
func (t *Table) ColumnDistinctCount(c int) int {
	if len(t.rows) == 0 {
		return 0
	}
	t.checkColumn(c)
	seen := make(map[int]struct{})
	for i := range t.rows {
		if v, ok := t.rows[i].cells[c].Value(); ok {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}
