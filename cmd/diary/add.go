package main

import (
	"github.com/spf13/cobra"

	"github.com/pkordes/travel-diary/internal/app"
	"github.com/pkordes/travel-diary/internal/device"
	"github.com/pkordes/travel-diary/internal/domain"
	"github.com/pkordes/travel-diary/internal/service"
)

// geocodeFlags holds an address typed on the command line.
type geocodeFlags struct {
	street, city, region, postalCode, name string
}

func (g *geocodeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&g.street, "street", "", "street")
	cmd.Flags().StringVar(&g.city, "city", "", "city")
	cmd.Flags().StringVar(&g.region, "region", "", "region or state")
	cmd.Flags().StringVar(&g.postalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&g.name, "name", "", "place name or plus code")
}

func (g geocodeFlags) result() domain.GeocodeResult {
	return domain.GeocodeResult{
		Street:     g.street,
		City:       g.city,
		Region:     g.region,
		PostalCode: g.postalCode,
		Name:       g.name,
	}
}

func (g geocodeFlags) set() bool {
	return g.result() != domain.GeocodeResult{}
}

func newAddCmd(e *env) *cobra.Command {
	var (
		photo    string
		lat, lon float64
		manual   geocodeFlags
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry for a photo taken at a position",
		Long: "Copies the photo into the diary, resolves the address of the position and saves the entry.\n" +
			"Address flags skip the online geocoder and use the given address instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var geocoder device.Geocoder = app.NewGeocoder(e.cfg)
			if manual.set() {
				geocoder = device.StaticGeocoder{manual.result()}
			}
			composer := service.NewComposer(
				e.entries,
				device.NewFileCamera(photo, e.cfg.PhotoDir),
				device.NewFixedLocator(domain.Position{Latitude: lat, Longitude: lon}, geocoder),
				e.view,
				e.log,
			)

			report := composer.RequestPermissions(ctx)
			for _, capability := range report.Missing() {
				e.view.Alert(service.Alert{Title: "Permission Error", Message: capability + " permission is required"})
			}

			entry, err := composer.Run(ctx)
			if err != nil {
				alert, ok := service.AlertFor(err)
				if !ok {
					e.view.Info("Canceled")
					return nil
				}
				e.view.Alert(alert)
				return errAlerted
			}
			e.view.Saved(entry)
			return nil
		},
	}

	cmd.Flags().StringVar(&photo, "photo", "", "path of the photo to add")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude where the photo was taken")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude where the photo was taken")
	manual.register(cmd)
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}
