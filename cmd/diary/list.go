package main

import (
	"github.com/spf13/cobra"

	"github.com/pkordes/travel-diary/internal/service"
)

func newListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every entry, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home := service.NewHome(e.entries, e.log)
			// A storage failure still shows the (empty) list.
			if err := home.Activate(cmd.Context()); err != nil {
				e.view.Alert(service.LoadFailed)
			}
			e.view.Home(home.Entries())
			return nil
		},
	}
}
