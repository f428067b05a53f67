package main

import (
	"github.com/spf13/cobra"

	"github.com/pkordes/travel-diary/internal/service"
)

func newRemoveCmd(e *env) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := e.view.Confirm(cmd.InOrStdin(), "Confirm Delete", "Are you sure you want to delete this entry?")
				if err != nil {
					return err
				}
				if !ok {
					e.view.Info("Canceled")
					return nil
				}
			}

			home := service.NewHome(e.entries, e.log)
			if err := home.Activate(cmd.Context()); err != nil {
				e.view.Alert(service.LoadFailed)
				return errAlerted
			}
			if err := home.Remove(cmd.Context(), args[0]); err != nil {
				e.log.ErrorContext(cmd.Context(), "remove entry failed", "entry_id", args[0], "error", err)
				e.view.Alert(service.RemoveFailed)
				return errAlerted
			}
			e.view.Home(home.Entries())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
