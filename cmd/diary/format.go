package main

import (
	"github.com/spf13/cobra"

	"github.com/pkordes/travel-diary/internal/address"
)

func newFormatCmd(e *env) *cobra.Command {
	var (
		lat, lon float64
		loc      geocodeFlags
	)

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Show how an address and position would be recorded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := address.Format(loc.result(), lon, lat)
			e.view.Location(f)
			if f.Address == "" {
				e.view.Info("No address: an entry with this location could not be saved")
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	loc.register(cmd)
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}
