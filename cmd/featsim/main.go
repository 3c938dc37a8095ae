package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/viant/featsim/config"
)

// app holds the global flags shared by all subcommands.
type app struct {
	cfgFile string
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	rootCmd := &cobra.Command{
		Use:   "featsim",
		Short: "Pairwise similarity of records described by named features",
		Long: `featsim projects labelled records onto a fixed feature schema and compares
every pair with euclidean, manhattan, hamming, jaccard, Sorensen-Dice and
cosine metrics.

Without --config the built-in fruit preference sample is used.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "data set file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	compare := a.compareCmd()
	rootCmd.AddCommand(compare)
	rootCmd.AddCommand(a.projectCmd())
	rootCmd.AddCommand(a.sqlCmd())
	rootCmd.AddCommand(versionCmd())

	// Without a subcommand, compare with default flags.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return compare.RunE(cmd, args)
	}
	return rootCmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (a *app) loadDataSet() (*config.DataSet, error) {
	if a.cfgFile == "" {
		a.logger.Debug("using built-in sample data set")
		return config.Sample(), nil
	}
	a.logger.Debug("loading data set", "path", a.cfgFile)
	return config.Load(a.cfgFile)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "featsim:", err)
		os.Exit(1)
	}
}
