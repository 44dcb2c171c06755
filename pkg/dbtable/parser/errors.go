package parser

import (
	"errors"
	"fmt"
)

// ErrInvalidField indicates a non-empty field that is not an integer.
var ErrInvalidField = errors.New("invalid integer field")

// ErrRaggedRecord indicates a record whose field count differs from the
// first record's.
var ErrRaggedRecord = errors.New("record has wrong number of fields")

// ErrInvalidRange indicates a malformed A1 cell range.
var ErrInvalidRange = errors.New("invalid cell range")

// ParseError represents an error while converting input into rows.
type ParseError struct {
	Record int    // 0-based record (row) index
	Field  int    // 0-based field index, -1 when the whole record is at fault
	Text   string // offending text
	Err    error
}

func (e *ParseError) Error() string {
	if e.Field < 0 {
		return fmt.Sprintf("parse error in record %d: %v", e.Record, e.Err)
	}
	return fmt.Sprintf("parse error in record %d, field %d (%q): %v", e.Record, e.Field, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
