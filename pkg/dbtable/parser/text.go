// Package parser converts delimited text and xlsx sheets into table rows.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/dbtable-go/pkg/dbtable/table"
)

const (
	// RecordDelimiter separates records within the input line.
	RecordDelimiter = "\r"
	// FieldDelimiter separates fields within a record.
	FieldDelimiter = ","
)

// ReadTable reads the first line of r, parses it with ParseLine and
// appends the rows to t in input order. Nothing is appended on error.
func ReadTable(r io.Reader, t *table.Table) error {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading input: %w", err)
	}

	rows, err := ParseLine(line)
	if err != nil {
		return err
	}
	if len(rows) > 0 && t.RowCount() > 0 && rows[0].Len() != t.ColumnCount() {
		return &ParseError{
			Record: 0,
			Field:  -1,
			Err:    fmt.Errorf("%w: %d fields, table has %d columns", ErrRaggedRecord, rows[0].Len(), t.ColumnCount()),
		}
	}

	for _, row := range rows {
		t.AppendRow(row)
	}
	return nil
}

// ReadTableString is like ReadTable but reads from s.
func ReadTableString(s string, t *table.Table) error {
	return ReadTable(strings.NewReader(s), t)
}

// ParseLine splits a line into records on RecordDelimiter and each record
// into fields on FieldDelimiter. Parsing stops at the first empty record,
// so a terminating delimiter does not produce a row. Empty fields become
// null cells; any other field must be a base-10 integer.
func ParseLine(line string) ([]table.Row, error) {
	line = strings.TrimSuffix(line, "\n")

	var rows []table.Row
	for i, record := range strings.Split(line, RecordDelimiter) {
		if record == "" {
			break
		}

		row, err := parseRecord(i, record)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 && row.Len() != rows[0].Len() {
			return nil, &ParseError{
				Record: i,
				Field:  -1,
				Text:   record,
				Err:    fmt.Errorf("%w: %d != %d", ErrRaggedRecord, row.Len(), rows[0].Len()),
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseRecord(index int, record string) (table.Row, error) {
	row := table.NewRow()
	for j, field := range strings.Split(record, FieldDelimiter) {
		cell, err := ParseCell(field)
		if err != nil {
			return table.Row{}, &ParseError{Record: index, Field: j, Text: field, Err: err}
		}
		row.AppendCell(cell)
	}
	return row, nil
}

// ParseCell converts a single field into a cell. Surrounding spaces are
// ignored; an empty field is null.
func ParseCell(s string) (table.Cell, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return table.Null, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return table.Null, fmt.Errorf("%w: %v", ErrInvalidField, err)
	}
	return table.Int(v), nil
}
