package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uyouii/measurement-stats/config"
	"github.com/uyouii/measurement-stats/utils"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mstats",
	Short: "Statistics for measurements with uncertainty",
	Long: `mstats summarizes measurements that carry their own uncertainty.

Each measurement becomes a gaussian kernel, the kernels sum into a
distribution that the commands query.

Measurements are written as VALUE or VALUE:UNCERTAINTY.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func loadSettings() (*config.Settings, error) {
	if cfgFile == "" {
		return config.DefaultSettings(), nil
	}
	return config.Load(cfgFile)
}

func commandContext() context.Context {
	ctx := context.Background()
	if !verbose {
		return ctx
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		printError("creating logger", err)
		return ctx
	}
	return utils.WithLogger(ctx, logger)
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
