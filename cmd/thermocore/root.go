package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/thermocore/geometry"
	"github.com/katalvlaran/thermocore/hull"
	"github.com/katalvlaran/thermocore/internal/config"
	"github.com/katalvlaran/thermocore/internal/logging"
	"github.com/katalvlaran/thermocore/internal/output"
)

// app is the state shared by every subcommand after flag parsing.
type app struct {
	cfg config.Config
	log zerolog.Logger

	configPath string
	format     string
	logLevel   string
	logFormat  string
	tolerance  float64
	workers    int
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{log: zerolog.Nop()}
	root := &cobra.Command{
		Use:          "thermocore",
		Short:        "Convex hull analysis of CASM formation energies",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.format, "format", "", "output format: json, yaml, cbor or text")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: console or json")
	pf.Float64Var(&a.tolerance, "tolerance", 0, "lower-hull and vertical-facet tolerance")
	pf.IntVar(&a.workers, "workers", 0, "parallel workers for per-row work")

	root.AddCommand(hullCmd(a))
	root.AddCommand(distanceCmd(a))
	root.AddCommand(correlationsCmd(a))
	root.AddCommand(ecisCmd(a))

	return root
}

// setup loads the config file and lets explicitly set flags override it.
func (a *app) setup(cmd *cobra.Command, stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance = a.tolerance
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.NewFormat(stderr, cfg.LogFormat, cfg.Level()).With().Str("cmd", cmd.Name()).Logger()
	a.log.Debug().
		Float64("tolerance", cfg.Tolerance).
		Float64("hull_epsilon", cfg.HullEpsilon).
		Int("workers", cfg.Workers).
		Str("format", cfg.Format).
		Msg("configured")

	return nil
}

func (a *app) provider() hull.Provider {
	return hull.NewBuilder(hull.WithEpsilon(a.cfg.HullEpsilon))
}

func (a *app) geometryOptions(extra ...geometry.Option) []geometry.Option {
	opts := []geometry.Option{
		geometry.WithTolerance(a.cfg.Tolerance),
		geometry.WithLPTolerance(a.cfg.LPTolerance),
		geometry.WithWorkers(a.cfg.Workers),
		geometry.WithProvider(a.provider()),
	}

	return append(opts, extra...)
}

func (a *app) write(cmd *cobra.Command, v any) error {
	return output.Write(cmd.OutOrStdout(), a.cfg.Format, v)
}
