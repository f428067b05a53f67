package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pkordes/travel-diary/internal/app"
	"github.com/pkordes/travel-diary/internal/config"
	"github.com/pkordes/travel-diary/internal/domain"
	"github.com/pkordes/travel-diary/internal/kv"
	"github.com/pkordes/travel-diary/internal/repo"
	"github.com/pkordes/travel-diary/internal/service"
	"github.com/pkordes/travel-diary/internal/view"
)

// errAlerted is returned once the failure has been shown to the user, so
// only the exit status is left to set.
var errAlerted = errors.New("failure already reported")

// env is what every subcommand needs once configuration has been loaded.
type env struct {
	cfg     config.Config
	log     *slog.Logger
	view    *view.View
	store   kv.Store
	themes  repo.ThemeRepo
	entries *service.EntryService
	close   func()
}

// newRootCmd builds the command tree. in, out and errOut replace the
// process's standard streams so tests can drive the CLI. The returned func
// closes the store if a command opened one and must run after Execute,
// whether or not it failed.
func newRootCmd(in io.Reader, out, errOut io.Writer) (*cobra.Command, func()) {
	var (
		themeFlag string
		e         env
	)

	root := &cobra.Command{
		Use:           "diary",
		Short:         "Keep a photo diary of the places you visit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			var flagTheme *domain.Theme
			if cmd.Flags().Changed("theme") {
				theme, err := domain.ParseTheme(themeFlag)
				if err != nil {
					return fmt.Errorf("--theme: %w", err)
				}
				flagTheme = &theme
			}

			log := app.NewLogger(errOut, cfg.LogLevel)
			store, closeStore, err := app.OpenStore(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			e.close = closeStore

			// --theme wins over a saved choice, which wins over THEME.
			themes := repo.NewThemeRepo(store)
			if flagTheme != nil {
				cfg.Theme = *flagTheme
			} else if saved, ok, err := themes.Load(cmd.Context()); err != nil {
				log.WarnContext(cmd.Context(), "saved theme unreadable, using default", "error", err)
			} else if ok {
				cfg.Theme = saved
			}

			v := view.New(out, cfg.Theme)
			e.cfg = cfg
			e.log = log
			e.view = v
			e.store = store
			e.themes = themes
			e.entries = service.NewEntryService(repo.NewEntryRepo(store), v, log)
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&themeFlag, "theme", "", "colour theme: light or dark (default from THEME)")

	root.AddCommand(
		newListCmd(&e),
		newAddCmd(&e),
		newRemoveCmd(&e),
		newFormatCmd(&e),
		newThemeCmd(&e),
	)

	closeStore := func() {
		if e.close != nil {
			e.close()
			e.close = nil
		}
	}
	return root, closeStore
}
