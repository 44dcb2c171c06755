package output

import (
	"bytes"

	"github.com/ukaji3/dbtable-go/pkg/dbtable/table"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet written by ToXLSX when none is given.
const DefaultSheet = "Sheet1"

// ToXLSX writes the table into a new workbook, starting at A1 of the
// given sheet. Null cells are left blank.
func ToXLSX(t *table.Table, sheetName string) (*bytes.Buffer, error) {
	if sheetName == "" {
		sheetName = DefaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheetName != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheetName); err != nil {
			return nil, err
		}
	}

	for i := 0; i < t.RowCount(); i++ {
		row := t.RowAt(i)
		values := make([]interface{}, row.Len())
		for j := range values {
			if v, ok := row.CellAt(j).Value(); ok {
				values[j] = v
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}
