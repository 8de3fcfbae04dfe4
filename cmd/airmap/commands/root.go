package commands

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"airmap/internal/app"
	"airmap/internal/config"
	"airmap/internal/logging"
	"airmap/internal/tui"
)

var (
	cfgFile string
	cfg     config.Config
	logger  zerolog.Logger
	logOut  io.Closer

	dataset *app.Dataset
	loadErr error
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "airmap",
		Short:        "Interactive terminal map of airports and flight routes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}
			f, err := logging.OpenFile(cfg.LogFile)
			if err != nil {
				return err
			}
			logOut = f
			logger = logging.New(f, cfg.LogLevel)
			logger.Info().Str("loglevel", logger.GetLevel().String()).Msg("Logging set up")

			dataset, loadErr = app.Load(cfg.Data, logger)
			if loadErr != nil {
				logger.Error().Err(loadErr).Msg("failed to load dataset")
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logOut != nil {
				return logOut.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m := tui.New(dataset, cfg, logger)
			if loadErr != nil {
				m = m.WithStatus("load error: " + loadErr.Error())
			}
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
			return err
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./airmap.yaml or ~/.config/airmap/airmap.yaml)")
	flags.String("airports", "", "airports file (.dat, .csv or .shp)")
	flags.String("visited", "", "visited airports file (.dat, .csv or .shp)")
	flags.String("routes", "", "OpenFlights routes.dat file")
	flags.String("countries", "", "GeoJSON country outlines")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.String("log-file", "", "log file")
	for key, name := range map[string]string{
		"data.airports":  "airports",
		"data.visited":   "visited",
		"data.routes":    "routes",
		"data.countries": "countries",
		"logLevel":       "log-level",
		"logFile":        "log-file",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}

	root.AddCommand(airportsCmd(), routesCmd())
	return root
}

// requireDataset is used by subcommands, which cannot run without data.
func requireDataset() (*app.Dataset, error) {
	if loadErr != nil {
		return nil, loadErr
	}
	return dataset, nil
}
