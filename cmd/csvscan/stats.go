package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/shapestone/shape-csvstream/pkg/csv"
)

// fileStats summarises one input.
type fileStats struct {
	name      string
	rows      int
	minFields int
	maxFields int
	bytes     int64
	header    []string
	elapsed   time.Duration
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE...",
		Short: "Count rows and fields of one or more CSV files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(a.out)
			table.Header("File", "Rows", "Fields", "Size", "Header")

			for _, name := range args {
				st, err := a.stats(cmd, name)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if err := table.Append(
					st.name,
					humanize.Comma(int64(st.rows)),
					fieldRange(st.minFields, st.maxFields),
					humanize.Bytes(uint64(st.bytes)),
					strings.Join(st.header, ", "),
				); err != nil {
					return err
				}
				a.logger.Info("scanned file",
					"file", st.name,
					"rows", st.rows,
					"bytes", st.bytes,
					"elapsed", st.elapsed)
			}
			return table.Render()
		},
	}
}

// stats streams name once and collects its summary.
func (a *app) stats(cmd *cobra.Command, name string) (fileStats, error) {
	st := fileStats{name: name}
	start := time.Now()

	r, counter, err := a.open(name)
	if err != nil {
		return st, err
	}

	err = csv.ForEachContext(cmd.Context(), r, func(row *csv.Row) bool {
		n := row.Len()
		if st.rows == 0 || n < st.minFields {
			st.minFields = n
		}
		if n > st.maxFields {
			st.maxFields = n
		}
		st.rows++
		return true
	})
	if err != nil {
		return st, err
	}

	st.bytes = counter.n
	st.header = r.Header().Names()
	st.elapsed = time.Since(start)
	return st, nil
}

func fieldRange(lo, hi int) string {
	if lo == hi {
		return fmt.Sprint(hi)
	}
	return fmt.Sprintf("%d-%d", lo, hi)
}
