package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ukaji3/dbtable-go/pkg/dbtable/table"
	"github.com/xuri/excelize/v2"
)

func newTestWorkbook(t *testing.T) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	sheetName := "Sheet1"
	// Data starts at B2; C3 is left empty.
	f.SetCellValue(sheetName, "B2", 1)
	f.SetCellValue(sheetName, "C2", 2)
	f.SetCellValue(sheetName, "D2", 3)
	f.SetCellValue(sheetName, "B3", 4)
	f.SetCellValue(sheetName, "D3", 6)
	f.SetCellValue(sheetName, "B4", -7)

	// Save and reopen so cells go through the serialized form.
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f.Close()

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestExtractSheetRows(t *testing.T) {
	f := newTestWorkbook(t)

	rows, err := ExtractSheetRows(f, "Sheet1", "")
	if err != nil {
		t.Fatalf("ExtractSheetRows failed: %v", err)
	}

	want := []table.Row{
		table.NewRow(table.Int(1), table.Int(2), table.Int(3)),
		table.NewRow(table.Int(4), table.Null, table.Int(6)),
		table.NewRow(table.Int(-7), table.Null, table.Null),
	}
	if len(rows) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if !rows[i].Equal(want[i]) {
			t.Errorf("row %d: expected %v, got %v", i, want[i].Cells(), rows[i].Cells())
		}
	}
}

func TestExtractSheetRows_Area(t *testing.T) {
	f := newTestWorkbook(t)

	rows, err := ExtractSheetRows(f, "Sheet1", "$C$2:$E$3")
	if err != nil {
		t.Fatalf("ExtractSheetRows failed: %v", err)
	}

	want := []table.Row{
		table.NewRow(table.Int(2), table.Int(3), table.Null),
		table.NewRow(table.Null, table.Int(6), table.Null),
	}
	if len(rows) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if !rows[i].Equal(want[i]) {
			t.Errorf("row %d: expected %v, got %v", i, want[i].Cells(), rows[i].Cells())
		}
	}
}

func TestExtractSheetRows_EmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows, err := ExtractSheetRows(f, "Sheet1", "")
	if err != nil {
		t.Fatalf("ExtractSheetRows failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(rows))
	}
}

func TestExtractSheetRows_TextCell(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", 1)
	f.SetCellValue("Sheet1", "B1", "Header")

	_, err := ExtractSheetRows(f, "Sheet1", "")
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("Expected ErrInvalidField, got %v", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Text != "B1=Header" {
		t.Errorf("Expected error on B1, got %v", err)
	}
}

func TestExtractSheetRows_NumberFormats(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", 1500)
	f.SetCellValue("Sheet1", "B1", -1234567)
	f.SetCellValue("Sheet1", "C1", 42)

	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 3}) // #,##0
	if err != nil {
		t.Fatalf("Failed to create style: %v", err)
	}
	decimals, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		t.Fatalf("Failed to create style: %v", err)
	}
	f.SetCellStyle("Sheet1", "A1", "B1", thousands)
	f.SetCellStyle("Sheet1", "C1", "C1", decimals)

	rows, err := ExtractSheetRows(f, "Sheet1", "")
	if err != nil {
		t.Fatalf("ExtractSheetRows failed: %v", err)
	}

	want := table.NewRow(table.Int(1500), table.Int(-1234567), table.Int(42))
	if len(rows) != 1 || !rows[0].Equal(want) {
		t.Errorf("Expected %v, got %v", want.Cells(), rows)
	}
}

func TestExtractSheetRows_AreaTooLarge(t *testing.T) {
	f := newTestWorkbook(t)

	_, err := ExtractSheetRows(f, "Sheet1", "A1:XFD1048576")
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("Expected ErrInvalidRange, got %v", err)
	}

	// Ranges past the data but under the limit are padded with nulls.
	rows, err := ExtractSheetRows(f, "Sheet1", "A1:J1000")
	if err != nil {
		t.Fatalf("ExtractSheetRows failed: %v", err)
	}
	if len(rows) != 1000 || rows[0].Len() != 10 {
		t.Fatalf("Expected 1000x10 rows, got %d rows", len(rows))
	}
	if got := rows[1].CellAt(1); !got.Equal(table.Int(1)) {
		t.Errorf("Expected B2 = 1, got %v", got)
	}
	if got := rows[999].CellAt(9); !got.IsNull() {
		t.Errorf("Expected J1000 to be null, got %v", got)
	}
}

func TestExtractSheetRows_MissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ExtractSheetRows(f, "Nope", ""); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected Area
		wantErr  bool
	}{
		{"A1:D10", Area{R1: 1, C1: 1, R2: 10, C2: 4}, false},
		{"$B$2:$C$5", Area{R1: 2, C1: 2, R2: 5, C2: 3}, false},
		{"'Sheet 1'!$A$1:$B$2", Area{R1: 1, C1: 1, R2: 2, C2: 2}, false},
		{"C3", Area{R1: 3, C1: 3, R2: 3, C2: 3}, false},
		{"D4:B2", Area{R1: 2, C1: 2, R2: 4, C2: 4}, false},
		{"A1:B2:C3", Area{}, true},
		{"nonsense", Area{}, true},
	}

	for _, tt := range tests {
		result, err := ParseRange(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRange(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("ParseRange(%q) error = %v, expected ErrInvalidRange", tt.input, err)
			}
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}

func TestFindDataBounds(t *testing.T) {
	tests := []struct {
		rows     [][]string
		expected Area
		ok       bool
	}{
		{nil, Area{}, false},
		{[][]string{{"", ""}, {""}}, Area{}, false},
		{[][]string{{"1"}}, Area{R1: 1, C1: 1, R2: 1, C2: 1}, true},
		{[][]string{{}, {"", "1", ""}, {"", "", "", "2"}}, Area{R1: 2, C1: 2, R2: 3, C2: 4}, true},
	}

	for i, tt := range tests {
		result, ok := FindDataBounds(tt.rows)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("case %d: FindDataBounds = %+v, %v; expected %+v, %v", i, result, ok, tt.expected, tt.ok)
		}
	}
}
