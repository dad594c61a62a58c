// Package commands implements the graphstat command tree.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/simplegraph/internal/config"
	"github.com/katalvlaran/simplegraph/rng"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  *slog.Logger
}

// Execute runs graphstat with os.Args and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "graphstat",
		Short: "Connectivity and degree statistics for undirected edge lists",
		Long: `graphstat loads an undirected edge list ("u v" per line, '#' comments),
renumbers its labels to 0..n-1 and reports components, density and degree
statistics. It also samples random graphs and demonstrates the per-worker
random generator set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/"+config.DefaultFileName+")")
	pf.String("log-level", "warn", "log level: debug|info|warn|error")
	pf.String("log-format", config.FormatText, "log format: text|json")
	pf.Uint64("seed", 0, "rng master seed (default: random)")
	pf.Int("workers", 4, "rng worker count")

	mustBind(a.v, config.KeyLogLevel, pf.Lookup("log-level"))
	mustBind(a.v, config.KeyLogFormat, pf.Lookup("log-format"))
	mustBind(a.v, config.KeySeed, pf.Lookup("seed"))
	mustBind(a.v, config.KeyWorkers, pf.Lookup("workers"))

	root.AddCommand(
		newStatsCmd(a),
		newComponentsCmd(a),
		newSampleCmd(a),
		newRNGCmd(a),
	)

	return root
}

// init resolves configuration and the logger once flags are parsed.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	a.cfg, a.logger = cfg, logger
	a.logger.Debug("configuration loaded",
		"file", cfg.File,
		"workers", cfg.Workers,
		"seeded", cfg.Seeded,
	)

	return nil
}

// rngSet builds an rng.Set of n workers honoring the configured seed.
func (a *app) rngSet(n int) (*rng.Set, error) {
	var opts []rng.Option
	if a.cfg.Seeded {
		opts = append(opts, rng.WithSeed(a.cfg.Seed))
	}

	return rng.New(n, opts...)
}

// mustBind ties a persistent flag to a config key. Both are fixed at build
// time, so failure is a programming error.
func mustBind(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("commands: bind %s: %v", key, err))
	}
}
