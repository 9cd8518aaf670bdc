package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shapestone/lazycsv/pkg/lazycsv"
	"github.com/spf13/cobra"
)

func newCutCmd() *cobra.Command {
	var separator string
	var fieldsFlag string
	var skip int

	cmd := &cobra.Command{
		Use:   "cut -f <columns> <file>",
		Short: "Print selected columns of each row",
		Long: `Cut prints the selected columns of every row, tab-separated.

Columns are 1-based. Only the selected cells are decoded; everything else
is skipped over without copying or validation. Rows too short for a
selected column print an empty value for it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sep, err := parseSeparator(separator)
			if err != nil {
				return err
			}
			columns, err := parseColumns(fieldsFlag)
			if err != nil {
				return err
			}

			data, cleanup, err := loadInput(args[0])
			if err != nil {
				return err
			}
			defer cleanup()

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			c := lazycsv.NewWithOptions(data, lazycsv.Options{Separator: sep})
			if skip > 0 {
				c.SkipRows(skip)
			}

			row := make([]lazycsv.Cell, 0, 16)
			for c.Scan() {
				item := c.Item()
				if item.Kind == lazycsv.ItemCell {
					row = append(row, item.Cell)
					continue
				}
				for i, col := range columns {
					if i > 0 {
						out.WriteByte('\t')
					}
					if col > len(row) {
						continue
					}
					text, err := row[col-1].Text()
					if err != nil {
						return fmt.Errorf("column %d: %w", col, err)
					}
					out.WriteString(text)
				}
				out.WriteByte('\n')
				row = row[:0]
			}
			return c.Err()
		},
	}

	cmd.Flags().StringVarP(&fieldsFlag, "fields", "f", "", "comma-separated 1-based column numbers (required)")
	cmd.Flags().StringVarP(&separator, "separator", "s", ",", "cell separator (single character, or \\t)")
	cmd.Flags().IntVar(&skip, "skip", 0, "skip this many leading rows")
	cmd.MarkFlagRequired("fields")

	return cmd
}

// parseColumns parses "1,3,2" into 1-based column numbers.
func parseColumns(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	columns := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid column %q: columns are positive 1-based numbers", p)
		}
		columns = append(columns, n)
	}
	return columns, nil
}
