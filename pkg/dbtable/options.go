// Package dbtable loads integer tables from delimited text or xlsx files.
package dbtable

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Format represents the input file format.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = "auto"
	// FormatCSV reads a single line of "\r"-separated, comma-delimited records.
	FormatCSV Format = "csv"
	// FormatXLSX reads the cells of one worksheet.
	FormatXLSX Format = "xlsx"
)

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, FormatCSV, FormatXLSX:
		return f, nil
	case "":
		return FormatAuto, nil
	}
	return "", &LoadError{Stage: "options", Err: ErrInvalidFormat}
}

// Options configures loading behavior.
type Options struct {
	// Format specifies the input format.
	Format Format
	// Sheet is the worksheet read from xlsx input.
	// If empty, the first sheet of the workbook is used.
	Sheet string
	// Range restricts xlsx input to an A1 range such as "B2:E20".
	// If empty, the bounding box of non-empty cells is used.
	Range string
	// Logger receives diagnostics. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{
		Format: FormatAuto,
	}
}

// ResolveFormat returns the concrete format used for path.
func (o Options) ResolveFormat(path string) Format {
	if o.Format != "" && o.Format != FormatAuto {
		return o.Format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	}
	return FormatCSV
}

// logger returns the configured logger or a no-op one.
func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
