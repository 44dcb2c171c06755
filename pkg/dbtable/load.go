package dbtable

import (
	"errors"
	"io"
	"os"

	"github.com/ukaji3/dbtable-go/pkg/dbtable/parser"
	"github.com/ukaji3/dbtable-go/pkg/dbtable/table"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Load reads a table from a file.
func Load(path string, opts Options) (*table.Table, error) {
	log := opts.logger().With(zap.String("path", path))

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, NewLoadError(path, "open", ErrFileNotFound)
	}

	format := opts.ResolveFormat(path)
	log.Debug("resolved input format", zap.String("format", string(format)))

	var t *table.Table
	var err error
	switch format {
	case FormatCSV:
		t, err = loadCSV(path)
	case FormatXLSX:
		t, err = loadXLSX(path, opts, log)
	default:
		return nil, NewLoadError(path, "options", ErrInvalidFormat)
	}
	if err != nil {
		return nil, err
	}

	log.Info("loaded table",
		zap.Int("rows", t.RowCount()),
		zap.Int("cols", t.ColumnCount()),
		zap.Int("data", t.NonNullCount()),
	)
	return t, nil
}

// LoadReader reads a table in the delimited text format from r.
func LoadReader(r io.Reader) (*table.Table, error) {
	t := table.New()
	if err := parser.ReadTable(r, t); err != nil {
		return nil, NewLoadError("", "parse", err)
	}
	return t, nil
}

func loadCSV(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewLoadError(path, "open", err)
	}
	defer f.Close()

	t := table.New()
	if err := parser.ReadTable(f, t); err != nil {
		return nil, NewLoadError(path, "parse", err)
	}
	return t, nil
}

func loadXLSX(path string, opts Options, log *zap.Logger) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, "open", err)
	}
	defer f.Close()

	sheetName := opts.Sheet
	if sheetName == "" {
		// Get sheet names
		sheetList := f.GetSheetList()
		if len(sheetList) == 0 {
			return table.New(), nil
		}
		sheetName = sheetList[0]
	}
	log.Debug("reading sheet", zap.String("sheet", sheetName), zap.String("range", opts.Range))

	rows, err := parser.ExtractSheetRows(f, sheetName, opts.Range)
	if err != nil {
		return nil, NewLoadError(path, "parse", err)
	}

	t := table.New()
	for _, row := range rows {
		t.AppendRow(row)
	}
	return t, nil
}
