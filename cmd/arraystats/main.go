// Package main provides the CLI entry point for arraystats.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/plantstats-go/internal/config"
	"github.com/ukaji3/plantstats-go/internal/log"
	"github.com/ukaji3/plantstats-go/pkg/arraystats"
)

// envPrefix prefixes environment overrides, e.g. ARRAYSTATS_FILE.
const envPrefix = "ARRAYSTATS"

var configKeys = []string{"file", "marker", "log-level"}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "arraystats",
		Short: "Print the mean and standard deviation of an array literal",
		Long: `arraystats reads the first line containing "arr=" from requirements.txt,
parses the bracketed list of numbers after "=" and prints its mean and
population standard deviation.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configFile)
		},
	}

	rootCmd.Flags().String("file", arraystats.DefaultPath, "Input file")
	rootCmd.Flags().String("marker", arraystats.DefaultMarker, "Substring identifying the array line")
	rootCmd.Flags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")

	return rootCmd
}

func run(cmd *cobra.Command, configFile string) error {
	v, err := config.Load(cmd.Flags(), envPrefix, configFile, configKeys...)
	if err != nil {
		return err
	}

	if err := log.SetLevelString(v.GetString("log-level")); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	path := v.GetString("file")
	log.Debug().Str("file", path).Msg("analyzing")

	summary, err := arraystats.Analyze(path, arraystats.Options{Marker: v.GetString("marker")})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Mean of the array: %s\n", arraystats.FormatValue(summary.Mean))
	fmt.Fprintf(out, "Standard Deviation of the array: %s\n", arraystats.FormatValue(summary.StdDev))
	return nil
}
