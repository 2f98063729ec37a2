package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jdziat/fluentkit"
	"github.com/jdziat/fluentkit/internal/demo"
	"github.com/jdziat/fluentkit/pkg/config"
)

// loggerFactory builds the process logger once flags are parsed.
type loggerFactory func(verbose bool) (*zap.Logger, error)

func newProductionLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// app holds state shared by the subcommands.
type app struct {
	configPath string
	verbose    bool

	newLogger loggerFactory
	logger    *zap.Logger
	cfg       *config.Config
}

func newRootCmd(newLogger loggerFactory) *cobra.Command {
	a := &app{newLogger: newLogger}

	rootCmd := &cobra.Command{
		Use:   "fluentkit",
		Short: "fluentkit - builder and fluent interface demos",
		Long: `fluentkit runs small illustrations of staged builders, fluent mutators
and an order-preserving query builder, one after another.

Configuration is read from --config, or from the nearest .fluentkit.yaml,
.fluentkit.yml or .fluentkit.hcl, and FLUENTKIT_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (.yaml, .yml or .hcl)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "run [demo...]",
			Short: "Run demos in order (all configured demos when none are named)",
			Long: `Runs the named demos in the order given. Without arguments the
runner.demos list from the configuration is used, or every demo when that
is empty. A failing demo does not stop the ones after it.

Example:
  fluentkit run
  fluentkit run person query`,
			PreRunE: a.setup,
			RunE:    a.run,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List available demos",
			Args:  cobra.NoArgs,
			RunE:  a.list,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "fluentkit version %s\n", version)
			},
		},
	)
	return rootCmd
}

// setup loads configuration and builds the logger for commands that run demos.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := a.newLogger(a.verbose || cfg.Runner.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	if config.IsDisabled() {
		fmt.Fprintf(cmd.OutOrStdout(), "fluentkit disabled by %s\n", config.EnvDisabled)
		return nil
	}

	names := args
	if len(names) == 0 {
		names = a.cfg.Runner.Demos
	}

	runner := demo.NewRunner(
		demo.WithOutput(cmd.OutOrStdout()),
		demo.WithLogger(fluentkit.NewZapAdapter(a.logger)),
		demo.WithConfig(a.cfg),
	)
	report, err := runner.Run(cmd.Context(), names...)
	if report != nil {
		fmt.Fprintln(cmd.OutOrStdout(), report.Summary())
	}
	return err
}

func (a *app) list(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, d := range demo.Registry() {
		fmt.Fprintf(w, "%s\t%s\n", d.Name, d.Summary)
	}
	return w.Flush()
}
