package main

import (
	"github.com/spf13/cobra"

	"github.com/pkordes/travel-diary/internal/service"
	"github.com/pkordes/travel-diary/internal/view"
)

func newThemeCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the colour theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e.view.Info("Theme: " + e.view.Theme().String())
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between the light and dark theme and remember the choice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			next := e.view.Theme().Toggle()
			if err := e.themes.Save(cmd.Context(), next); err != nil {
				e.log.ErrorContext(cmd.Context(), "save theme failed", "error", err)
				e.view.Alert(service.ThemeFailed)
				return errAlerted
			}
			view.New(cmd.OutOrStdout(), next).Info("Theme: " + next.String())
			return nil
		},
	})
	return cmd
}
