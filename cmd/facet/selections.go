package main

import (
	"fmt"

	"facet/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// NewSelectionsCmd creates the selections command group.
func NewSelectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selections",
		Short: "Inspect or clear saved selections",
	}
	cmd.AddCommand(newSelectionsListCmd())
	cmd.AddCommand(newSelectionsClearCmd())
	return cmd
}

func openStore() (*store.Store, error) {
	dir, err := cfg.StoreDir()
	if err != nil {
		return nil, err
	}
	return store.Open(dir)
}

func newSelectionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved selections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			saved, err := st.List()
			if err != nil {
				return err
			}
			if len(saved) == 0 {
				fmt.Println("no saved selections")
				return nil
			}
			for _, s := range saved {
				fmt.Printf("%s · %s\n  %s\n  updated %s\n",
					s.Source, s.Column, s.Encoded,
					s.UpdatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func newSelectionsClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved selections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				var confirmed bool
				err := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title("Delete all saved selections?").
							Affirmative("Delete").
							Negative("Keep").
							Value(&confirmed),
					),
				).Run()
				if err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			n, err := st.Clear()
			if err != nil {
				return err
			}
			fmt.Printf("deleted %d saved selection(s)\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")
	return cmd
}
