package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/dbtable-go/pkg/dbtable/table"
)

func TestParseLine(t *testing.T) {
	rows, err := ParseLine("1,2,,4\r5,,7,8\r")
	require.NoError(t, err)

	want := []table.Row{
		table.NewRow(table.Int(1), table.Int(2), table.Null, table.Int(4)),
		table.NewRow(table.Int(5), table.Null, table.Int(7), table.Int(8)),
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("ParseLine mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLine_Shapes(t *testing.T) {
	tests := []struct {
		input string
		rows  int
		cols  int
	}{
		{"", 0, 0},
		{"\r", 0, 0},
		{"7", 1, 1},
		{"7\r", 1, 1},
		{"1,2\r3,4", 2, 2},
		{"1,2\r3,4\r\n", 2, 2},
		{"1,2\r\r3,4\r", 1, 2},     // an empty record ends the data
		{",\r,\r", 2, 2},           // all-null records
		{"1,2,\r3,4,\r", 2, 3},     // trailing comma is a trailing null
		{" 1 , -2 \r+3,0\r", 2, 2}, // surrounding spaces are ignored
	}

	for _, tt := range tests {
		rows, err := ParseLine(tt.input)
		if err != nil {
			t.Errorf("ParseLine(%q) failed: %v", tt.input, err)
			continue
		}
		if len(rows) != tt.rows {
			t.Errorf("ParseLine(%q) = %d rows, expected %d", tt.input, len(rows), tt.rows)
			continue
		}
		for _, row := range rows {
			if row.Len() != tt.cols {
				t.Errorf("ParseLine(%q) row has %d cells, expected %d", tt.input, row.Len(), tt.cols)
			}
		}
	}
}

func TestParseLine_InvalidField(t *testing.T) {
	_, err := ParseLine("1,2\r3,x\r")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidField))

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Record)
	assert.Equal(t, 1, perr.Field)
	assert.Equal(t, "x", perr.Text)
}

func TestParseLine_Overflow(t *testing.T) {
	_, err := ParseLine("99999999999999999999999\r")
	assert.True(t, errors.Is(err, ErrInvalidField))
}

func TestParseLine_RaggedRecord(t *testing.T) {
	_, err := ParseLine("1,2,3\r4,5\r")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRaggedRecord))

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Record)
	assert.Equal(t, -1, perr.Field)
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		input    string
		expected table.Cell
		wantErr  bool
	}{
		{"123", table.Int(123), false},
		{"-100", table.Int(-100), false},
		{"", table.Null, false},
		{"   ", table.Null, false},
		{"1.5", table.Null, true},
		{"hello", table.Null, true},
	}

	for _, tt := range tests {
		result, err := ParseCell(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCell(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !result.Equal(tt.expected) {
			t.Errorf("ParseCell(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestReadTable(t *testing.T) {
	tbl := table.New()
	err := ReadTable(strings.NewReader("1,2,,4\r5,,7,8\r\nignored,line\n"), tbl)
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, 4, tbl.ColumnCount())
	assert.Equal(t, 2.0, tbl.ColumnMax(1))
	assert.Equal(t, 2.0, tbl.ColumnSum(1))
	assert.Equal(t, 1, tbl.ColumnNonNullCount(1))
}

func TestReadTable_AppendsToExisting(t *testing.T) {
	tbl := table.New()
	tbl.AppendRow(table.NewRow(table.Int(0), table.Int(0)))

	require.NoError(t, ReadTable(strings.NewReader("1,2\r"), tbl))
	assert.Equal(t, 2, tbl.RowCount())

	err := ReadTable(strings.NewReader("1,2,3\r"), tbl)
	assert.True(t, errors.Is(err, ErrRaggedRecord))
	assert.Equal(t, 2, tbl.RowCount())
}

func TestReadTable_ErrorLeavesTableUntouched(t *testing.T) {
	tbl := table.New()
	err := ReadTable(strings.NewReader("1,2\r3,oops\r"), tbl)
	assert.True(t, errors.Is(err, ErrInvalidField))
	assert.Equal(t, 0, tbl.RowCount())
}
