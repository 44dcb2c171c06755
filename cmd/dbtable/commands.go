package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/dbtable-go/pkg/dbtable/output"
	"github.com/ukaji3/dbtable-go/pkg/dbtable/parser"
	"github.com/ukaji3/dbtable-go/pkg/dbtable/table"
	"go.uber.org/zap"
)

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print FILE",
		Short: "Print the whole table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output.FormatTable(s.table))
			return nil
		},
	}
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary FILE",
		Short: "Print the number of rows, columns and data cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.FormatSummary(s.table))
			return nil
		},
	}
}

func newRowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "row FILE ROW",
		Short: "Print one row, cells separated by spaces",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			r, err := parseIndex("row", args[1], s.table.RowCount())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.FormatRow(s.table.RowAt(r)))
			return nil
		},
	}
}

func newColCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "col FILE COL",
		Short: "Print one column on a single line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			c, err := parseIndex("column", args[1], s.table.ColumnCount())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.FormatColumn(s.table, c))
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE COL",
		Short: "Print count, sum, min, max and average of a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			c, err := parseIndex("column", args[1], s.table.ColumnCount())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.FormatStats(s.table, c))
			return nil
		},
	}
}

func newSortCmd() *cobra.Command {
	var keys []int

	cmd := &cobra.Command{
		Use:   "sort FILE",
		Short: "Sort rows by one or more columns and print the table",
		Long: `Sort rows by the columns given with --key, in priority order.
Null cells sort after every value. Rows with equal keys keep their order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			for _, k := range keys {
				if s.table.RowCount() > 0 && (k < 0 || k >= s.table.ColumnCount()) {
					return fmt.Errorf("column index %d out of range (table has %d)", k, s.table.ColumnCount())
				}
			}
			s.table.SortBy(table.NewSortSpec(keys...))
			s.logger.Debug("sorted table", zap.Ints("keys", keys))
			fmt.Fprint(cmd.OutOrStdout(), output.FormatTable(s.table))
			return nil
		},
	}
	cmd.Flags().IntSliceVarP(&keys, "key", "k", []int{0}, "Sort column, repeat or comma-separate for more keys")
	return cmd
}

func newDelRowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delrow FILE ROW",
		Short: "Delete a row and print the table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			r, err := parseIndex("row", args[1], s.table.RowCount())
			if err != nil {
				return err
			}
			s.table.RemoveRowAt(r)
			fmt.Fprint(cmd.OutOrStdout(), output.FormatTable(s.table))
			return nil
		},
	}
}

func newDelColCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delcol FILE COL",
		Short: "Delete a column and print the table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			c, err := parseIndex("column", args[1], s.table.ColumnCount())
			if err != nil {
				return err
			}
			s.table.RemoveColumnAt(c)
			fmt.Fprint(cmd.OutOrStdout(), output.FormatTable(s.table))
			return nil
		},
	}
}

func newAddColCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "addcol FILE VALUES",
		Short: "Append a column and print the table",
		Long: `Append a column on the right of the table. VALUES holds one
comma-separated value per row; leave a value empty for a null cell.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}
			values, err := parseColumn(args[1])
			if err != nil {
				return err
			}
			if len(values) != s.table.RowCount() {
				return fmt.Errorf("got %d values for %d rows", len(values), s.table.RowCount())
			}
			s.table.AppendColumn(values)
			fmt.Fprint(cmd.OutOrStdout(), output.FormatTable(s.table))
			return nil
		},
	}
}

// parseColumn converts "1,,3" into cells.
func parseColumn(s string) ([]table.Cell, error) {
	fields := strings.Split(s, parser.FieldDelimiter)
	cells := make([]table.Cell, len(fields))
	for i, field := range fields {
		cell, err := parser.ParseCell(field)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		cells[i] = cell
	}
	return cells, nil
}

func newExportCmd() *cobra.Command {
	var outputPath string
	var pretty bool
	var outSheet string

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the table as JSON, xlsx or text",
		Long: `Write the table to the file given with --output. The format follows
the extension: .json, .xlsx, anything else is the aligned text form.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, args[0])
			if err != nil {
				return err
			}

			var data []byte
			switch strings.ToLower(filepath.Ext(outputPath)) {
			case ".json":
				data, err = output.ToJSON(s.table, pretty || s.cfg.Output.Pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
			case ".xlsx":
				buf, err := output.ToXLSX(s.table, outSheet)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				data = buf.Bytes()
			default:
				data = []byte(output.FormatTable(s.table))
			}

			if err := output.WriteFile(outputPath, data); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			s.logger.Info("exported table", zap.String("output", outputPath), zap.Int("bytes", len(data)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&outSheet, "out-sheet", output.DefaultSheet, "Sheet name for xlsx output")
	cmd.MarkFlagRequired("output")
	return cmd
}
