// Command decint evaluates arbitrary precision integer arithmetic.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/decint/integer"
	"github.com/calebcase/decint/internal/config"
)

// app carries state shared by the subcommands.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	lenient    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.DefaultConfig(),
		logger: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "decint",
		Short: "Arbitrary precision decimal integer arithmetic",
		Long: `decint adds, subtracts, multiplies and divides signed integers of any
size. Operands are decimal literals with an optional sign. Division truncates
toward zero.

Negative operands must follow "--" so they are not read as flags:

  decint eval -- -999 - 1999`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "decint.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.lenient, "lenient", false, "Skip non digit characters in operands instead of rejecting them")

	rootCmd.AddCommand(
		a.evalCmd(),
		a.batchCmd(),
		a.encodeCmd(),
		a.decodeCmd(),
	)

	return rootCmd
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) (err error) {
	a.cfg, err = config.Load(a.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("lenient") {
		a.cfg.Lenient = a.lenient
	}

	zc := zap.NewProductionConfig()

	lvl, err := a.cfg.Level()
	if err != nil {
		return err
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	a.logger, err = zc.Build()
	if err != nil {
		return err
	}

	a.logger.Debug("configured",
		zap.String("config", a.configPath),
		zap.Int("workers", a.cfg.Workers),
		zap.Bool("lenient", a.cfg.Lenient),
	)

	return nil
}

// parse reads an operand according to the configured strictness.
func (a *app) parse(s string) (integer.Int, error) {
	if a.cfg.Lenient {
		return integer.ParseLenient(s), nil
	}

	return integer.Parse(s)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
