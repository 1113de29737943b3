package main

import (
	"fmt"
	"sort"

	"facet/internal/data"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewCountsCmd creates the counts command.
func NewCountsCmd() *cobra.Command {
	var (
		column string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "counts FILE",
		Short: "Print the distinct values of a column with their counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := data.Load(args[0], column)
			if err != nil {
				return err
			}

			counts := col.Counts
			sort.SliceStable(counts, func(i, j int) bool {
				return counts[i].Count > counts[j].Count
			})
			if limit > 0 && len(counts) > limit {
				counts = counts[:limit]
			}

			fmt.Printf("%s · %s (%s distinct)\n",
				col.Source, col.Name, humanize.Comma(int64(len(col.Counts))))
			for _, vc := range counts {
				fmt.Printf("%10s  %s\n", humanize.Comma(int64(vc.Count)), vc.Name)
			}
			if rest := len(col.Counts) - len(counts); rest > 0 {
				fmt.Printf("... and %d more\n", rest)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&column, "column", "c", "", "column to load (glob matched against the header, default first column)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most N values (0 = all)")

	return cmd
}
