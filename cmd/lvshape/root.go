// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvshape/config"
	"github.com/katalvlaran/lvshape/factory"
	"github.com/katalvlaran/lvshape/ingest"
	"github.com/katalvlaran/lvshape/logging"
	"github.com/katalvlaran/lvshape/repository"
	"github.com/katalvlaran/lvshape/warehouse"
)

// app carries state shared by subcommands once the root hooks have run.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	noColor    bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "lvshape",
		Short: "Triangle and pyramid file processor",
		Long: `lvshape reads text files of triangles and pyramids, validates every line,
caches per-shape metrics and prints reports or filtered, ordered listings.

Invalid lines are reported with their line number; they never stop a run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "lvshape.yaml", "YAML config file (optional)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: json|console")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newReportCmd(a), newQueryCmd(a))
	return root
}

// setup loads configuration, applies root flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg, a.log = cfg, log
	return nil
}

func (a *app) colored() bool {
	return !a.noColor && !color.NoColor
}

// load ingests the input file into a repository with a metrics store attached.
func (a *app) load(args []string) (*ingest.ParseResult, *repository.Repository, *warehouse.MetricsStore, error) {
	input := a.cfg.Input
	if len(args) > 0 {
		input = args[0]
	}

	reader := ingest.New(
		ingest.WithLogger(a.log),
		ingest.WithFactory(factory.New(factory.WithLogger(a.log))),
	)
	res, err := reader.ReadShapesFromFile(input)
	if err != nil {
		return nil, nil, nil, err
	}

	store := warehouse.New(warehouse.WithLogger(a.log))
	repo := repository.New(repository.WithObserver(store), repository.WithLogger(a.log))
	repo.AddAll(res.Shapes...)

	a.log.Info("loaded shapes",
		zap.String("input", input),
		zap.Int("shapes", repo.Len()),
		zap.Int("cached", store.Len()))
	return res, repo, store, nil
}
