package parser

import (
	"fmt"

	"github.com/ukaji3/dbtable-go/pkg/dbtable/table"
	"github.com/xuri/excelize/v2"
)

// MaxAreaCells caps the number of cells an explicit range may cover.
const MaxAreaCells = 1 << 24

// ExtractSheetRows reads the cells of a sheet into rows. area is an
// optional A1 range; when empty the bounding box of non-empty cells is
// used. Every row is padded with null cells to the area width, so the
// result is rectangular. Cells are read as stored, so number formats such
// as thousands separators do not affect the parsed value.
func ExtractSheetRows(f *excelize.File, sheetName string, area string) ([]table.Row, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var bounds Area
	if area != "" {
		bounds, err = ParseRange(area)
		if err != nil {
			return nil, err
		}
		if n := int64(bounds.Rows()) * int64(bounds.Cols()); n > MaxAreaCells {
			return nil, fmt.Errorf("%w: %q covers %d cells, limit is %d", ErrInvalidRange, area, n, MaxAreaCells)
		}
	} else {
		var ok bool
		bounds, ok = FindDataBounds(rows)
		if !ok {
			return nil, nil
		}
	}

	result := make([]table.Row, 0, bounds.Rows())
	for r := bounds.R1; r <= bounds.R2; r++ {
		row := table.NewRow()
		for c := bounds.C1; c <= bounds.C2; c++ {
			text := cellText(rows, r, c)
			cell, err := ParseCell(text)
			if err != nil {
				name, _ := excelize.CoordinatesToCellName(c, r)
				return nil, &ParseError{
					Record: r - bounds.R1,
					Field:  c - bounds.C1,
					Text:   name + "=" + text,
					Err:    err,
				}
			}
			row.AppendCell(cell)
		}
		result = append(result, row)
	}

	return result, nil
}
