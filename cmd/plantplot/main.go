// Package main provides the CLI entry point for plantplot.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/plantstats-go/internal/config"
	"github.com/ukaji3/plantstats-go/internal/log"
	"github.com/ukaji3/plantstats-go/pkg/plantplot"
	"github.com/ukaji3/plantstats-go/pkg/plantplot/charts"
	"github.com/ukaji3/plantstats-go/pkg/plantplot/models"
)

// envPrefix prefixes environment overrides, e.g. PLANTPLOT_OUTPUT_DIR.
const envPrefix = "PLANTPLOT"

// configKeys are the flags that may also come from the environment or a
// config file.
var configKeys = []string{"output-dir", "file-pattern", "weeks", "bins", "figure-size", "workbook", "log-level"}

var chartLabels = map[models.ChartKind]string{
	models.ChartScatter:   "Scatter plot",
	models.ChartHistogram: "Histogram",
	models.ChartLine:      "Line plot",
}

type cliFlags struct {
	plant      string
	height     []float64
	leafCount  []int
	dryWeight  []float64
	configFile string
}

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(expandMultiValueArgs(os.Args[1:], multiValueFlags))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f cliFlags

	rootCmd := &cobra.Command{
		Use:   "plantplot --plant NAME --height H... --leaf_count N... --dry_weight W...",
		Short: "Generate plots for plant data",
		Long: `plantplot writes a height vs leaf count scatter plot, a dry weight
histogram and a height over time line plot for one plant.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &f)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&f.plant, "plant", "", "The name of the plant")
	flags.Float64SliceVar(&f.height, "height", nil, "Height data (in cm)")
	flags.IntSliceVar(&f.leafCount, "leaf_count", nil, "Leaf count data")
	flags.Float64SliceVar(&f.dryWeight, "dry_weight", nil, "Dry weight data (in grams)")
	for _, name := range []string{"plant", "height", "leaf_count", "dry_weight"} {
		_ = rootCmd.MarkFlagRequired(name)
	}

	flags.String("output-dir", plantplot.DefaultOutputDir, "Directory for the generated files")
	flags.String("file-pattern", plantplot.DefaultFilePattern, "Chart file name pattern ({plant} and {kind} are replaced)")
	flags.Int("weeks", plantplot.DefaultWeeks, "Number of weeks on the line plot axis")
	flags.Int("bins", plantplot.DefaultBins, "Number of histogram bins")
	flags.String("figure-size", charts.DefaultFigureSize.String(), "Figure size in inches (WIDTHxHEIGHT)")
	flags.Bool("workbook", false, "Also export the measurements to an xlsx workbook")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.StringVar(&f.configFile, "config", "", "Config file (yaml, json or toml)")

	return rootCmd
}

func run(cmd *cobra.Command, f *cliFlags) error {
	v, err := config.Load(cmd.Flags(), envPrefix, f.configFile, configKeys...)
	if err != nil {
		return err
	}

	if err := log.SetLevelString(v.GetString("log-level")); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	size, err := charts.ParseFigureSize(v.GetString("figure-size"))
	if err != nil {
		return err
	}

	opts := plantplot.Options{
		OutputDir:   v.GetString("output-dir"),
		FilePattern: v.GetString("file-pattern"),
		Weeks:       v.GetInt("weeks"),
		Bins:        v.GetInt("bins"),
		FigureSize:  size,
		Workbook:    v.GetBool("workbook"),
	}

	set := models.MeasurementSet{
		Plant:     f.plant,
		Height:    f.height,
		LeafCount: f.leafCount,
		DryWeight: f.dryWeight,
	}

	log.Debug().Str("plant", set.Plant).Str("output_dir", opts.OutputDir).Msg("rendering charts")

	report, err := plantplot.Render(set, opts)
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), report)
	return nil
}

func printReport(w io.Writer, report *models.Report) {
	fmt.Fprintf(w, "Generated plots for %s:\n", report.Plant)
	for _, chart := range report.Charts {
		fmt.Fprintf(w, "%s saved as %s\n", chartLabels[chart.Kind], chart.Path)
	}
	if report.Workbook != "" {
		fmt.Fprintf(w, "Workbook saved as %s\n", report.Workbook)
	}
}
