package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"facet/internal/log"
	"facet/internal/store"
	"facet/internal/tui"
	"facet/internal/tui/styles"
	"facet/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewBrowseCmd creates the browse command.
func NewBrowseCmd() *cobra.Command {
	var (
		column    string
		selectArg string
		watchFlag bool
		noStore   bool
	)

	cmd := &cobra.Command{
		Use:   "browse FILE",
		Short: "Interactively filter the values of a column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			styles.Apply(cfg.Theme.Primary, cfg.Theme.Selected, cfg.Theme.Muted, cfg.Theme.Error)

			// The alternate screen owns the terminal; logs go to a
			// file instead.
			if logFile, err := os.OpenFile(
				filepath.Join(os.TempDir(), "facet.log"),
				os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
				defer logFile.Close()
				log.SetOutput(logFile)
			}

			opts := tui.Options{
				Source:        source,
				ColumnPattern: column,
				ListHeight:    cfg.UI.ListHeight,
				HideCounts:    !cfg.UI.ShowCounts,
			}

			var st *store.Store
			if cfg.Store.Enabled && !noStore {
				dir, err := cfg.StoreDir()
				if err == nil {
					st, err = store.Open(dir)
				}
				if err != nil {
					log.LogWithFields(log.F("error", err)).Warn("selection store unavailable")
				} else {
					opts.Store = st
					defer st.Close()
				}
			}

			// Stored selections are keyed by the resolved column name,
			// so the model restores them itself after the first load.
			opts.InitialSelection, err = initialSelection(selectArg)
			if err != nil {
				return err
			}

			if watchFlag || cfg.Watch.Enabled {
				w, err := watch.New(source)
				if err != nil {
					return err
				}
				if err := w.Start(); err != nil {
					return err
				}
				defer w.Stop()
				opts.Watcher = w
			}

			model := tui.New(opts)
			p := tea.NewProgram(model, tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running UI: %w", err)
			}

			if m, ok := final.(*tui.Model); ok && m.Selection() != "" {
				fmt.Println(m.Selection())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&column, "column", "c", "", "column to load (glob matched against the header, default first column)")
	cmd.Flags().StringVarP(&selectArg, "select", "s", "", "initial selection as a JSON array, or @FILE to read it from a file")
	cmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "reload counts when the file changes")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "do not load or save selections")

	return cmd
}

// initialSelection resolves the explicit starting encoded selection
// from the flag, inline or @file. It wins over any stored one.
func initialSelection(selectArg string) (string, error) {
	if selectArg == "" {
		return "", nil
	}
	if strings.HasPrefix(selectArg, "@") {
		data, err := os.ReadFile(strings.TrimPrefix(selectArg, "@"))
		if err != nil {
			return "", fmt.Errorf("reading selection file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return selectArg, nil
}
