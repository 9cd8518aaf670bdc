package main

import (
	"fmt"
	"time"

	"github.com/shapestone/lazycsv/pkg/lazycsv"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var separator string
	var width int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate CSV syntax and cell encoding",
		Long: `Check scans the whole file, decodes every cell, and reports problems.

Syntax errors (unterminated quotes, misplaced quotes, bare carriage
returns) stop the scan and name the byte offset. Cell-local decode errors
(invalid UTF-8, quotes inside unquoted cells) are reported per cell and
the scan continues. With --width, rows are also checked against a fixed
column count.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sep, err := parseSeparator(separator)
			if err != nil {
				return err
			}
			log := newLogger(verbose)

			data, cleanup, err := loadInput(args[0])
			if err != nil {
				return err
			}
			defer cleanup()
			log.Debugf("loaded %d bytes from %s", len(data), args[0])

			start := time.Now()
			opts := lazycsv.Options{Separator: sep}
			var rows, cells, bad int64

			report := func(row int64, col int, err error) {
				bad++
				log.Infof("row %d, column %d: %v", row, col, err)
			}

			if width > 0 {
				r := lazycsv.NewWithOptions(data, opts).Rows(width)
				for r.Scan() {
					for i, cell := range r.Row() {
						cells++
						if _, err := cell.Text(); err != nil {
							report(rows, i+1, err)
						}
					}
					rows++
				}
				if err := r.Err(); err != nil {
					return err
				}
			} else {
				c := lazycsv.NewWithOptions(data, opts)
				col := 0
				for c.Scan() {
					item := c.Item()
					if item.Kind == lazycsv.ItemRowEnd {
						rows++
						col = 0
						continue
					}
					cells++
					col++
					if _, err := item.Cell.Text(); err != nil {
						report(rows, col, err)
					}
				}
				if err := c.Err(); err != nil {
					return err
				}
			}
			log.Debugf("checked in %s", time.Since(start))

			if bad > 0 {
				return fmt.Errorf("%d of %d cells failed to decode", bad, cells)
			}
			fmt.Printf("OK: %d rows, %d cells\n", rows, cells)
			return nil
		},
	}

	cmd.Flags().StringVarP(&separator, "separator", "s", ",", "cell separator (single character, or \\t)")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "expected number of columns per row (0 disables the check)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	return cmd
}
