package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-csvstream/pkg/csv"
)

func newCatCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "cat FILE...",
		Short: "Print the rows of one or more CSV files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd.Context(), format, args, 0)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: table, csv, tsv or json (default table on a terminal, csv otherwise)")
	return cmd
}

func newHeadCmd(a *app) *cobra.Command {
	var (
		format string
		n      int
	)

	cmd := &cobra.Command{
		Use:   "head FILE",
		Short: "Print the first rows of a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return fmt.Errorf("-n must be positive, got %d", n)
			}
			return a.print(cmd.Context(), format, args, n)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: table, csv, tsv or json")
	cmd.Flags().IntVarP(&n, "lines", "n", 10, "number of data rows to print")
	return cmd
}

// print streams the rows of files to a.out. limit > 0 stops after that many
// rows per file.
func (a *app) print(ctx context.Context, format string, files []string, limit int) error {
	if format == "" {
		format = formatCSV
		if isTerminal(a.out) {
			format = formatTable
		}
	}
	p, err := newPrinter(format, a.out)
	if err != nil {
		return err
	}

	headerDone := false
	for _, name := range files {
		r, _, err := a.open(name)
		if err != nil {
			return err
		}

		var (
			count    int
			printErr error
		)
		err = csv.ForEachContext(ctx, r, func(row *csv.Row) bool {
			if !headerDone && row.Header() != nil {
				headerDone = true
				if printErr = p.header(row.Header()); printErr != nil {
					return false
				}
			}
			if printErr = p.row(row); printErr != nil {
				return false
			}
			count++
			return limit <= 0 || count < limit
		})
		if err == nil {
			err = printErr
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		if !headerDone && r.Header() != nil {
			headerDone = true
			if err := p.header(r.Header()); err != nil {
				return err
			}
		}
		a.logger.Info("printed rows", "file", name, "rows", count)
	}
	return p.close()
}
