// facet explores the distinct values of a data column: search, toggle
// and bulk-select values interactively, and emit the selection as a
// JSON-encoded set.
package main

import (
	"fmt"
	"os"

	"facet/internal/config"
	"facet/internal/log"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	cfgFile string
	debug   bool
	cfg     *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "facet",
		Short:   "Interactive value filter for data columns",
		Long: `Facet loads a column from a CSV/TSV file, counts its distinct
values and lets you narrow them interactively: text search, per-value
checkboxes, bulk All/None. The resulting selection is printed as a
JSON array of the selected values.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				return err
			}
			log.SetDebug(debug || cfg.Debug)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/facet/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(NewBrowseCmd())
	rootCmd.AddCommand(NewCountsCmd())
	rootCmd.AddCommand(NewSelectionsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
