package main

import (
	"fmt"
	"time"

	"github.com/shapestone/lazycsv/pkg/lazycsv"
	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	var separator string
	var skip int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "count <file>",
		Short: "Count rows and cells without decoding them",
		Long: `Count scans the file and reports row, cell, and byte counts.

Cells are never decoded, so this runs at raw scan speed regardless of the
cell contents.`,
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
			c := lazycsv.NewWithOptions(data, lazycsv.Options{Separator: sep})
			if skip > 0 {
				c.SkipRows(skip)
			}

			var rows, cells int64
			for c.Scan() {
				if c.Item().Kind == lazycsv.ItemRowEnd {
					rows++
				} else {
					cells++
				}
			}
			if err := c.Err(); err != nil {
				return err
			}
			log.Debugf("scanned in %s", time.Since(start))

			fmt.Printf("rows: %d\ncells: %d\nbytes: %d\n", rows, cells, len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&separator, "separator", "s", ",", "cell separator (single character, or \\t)")
	cmd.Flags().IntVar(&skip, "skip", 0, "skip this many leading rows")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	return cmd
}
