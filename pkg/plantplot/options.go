// Package plantplot renders scatter, histogram and line charts for the
// measurements of a single plant.
package plantplot

import (
	"path/filepath"
	"strings"

	"github.com/ukaji3/plantstats-go/pkg/plantplot/charts"
	"github.com/ukaji3/plantstats-go/pkg/plantplot/models"
)

const (
	// DefaultOutputDir is the directory charts are written to.
	DefaultOutputDir = "4_2"
	// DefaultFilePattern names chart files; {plant} and {kind} are replaced.
	DefaultFilePattern = "{plant}_{kind}.png"
	// DefaultWeeks is the length of the line chart week axis.
	DefaultWeeks = 5
	// DefaultBins is the histogram bin count.
	DefaultBins = 5
)

// Options configures rendering behavior.
type Options struct {
	// OutputDir is the directory receiving the files. Created if missing.
	OutputDir string
	// FilePattern is the chart file name template.
	FilePattern string
	// Weeks is the number of week labels on the line chart. Height series
	// longer than this are rejected.
	Weeks int
	// Bins is the number of histogram bins.
	Bins int
	// FigureSize is the canvas size in inches.
	FigureSize charts.FigureSize
	// Workbook enables the xlsx export of the measurements.
	Workbook bool
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		OutputDir:   DefaultOutputDir,
		FilePattern: DefaultFilePattern,
		Weeks:       DefaultWeeks,
		Bins:        DefaultBins,
		FigureSize:  charts.DefaultFigureSize,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.OutputDir == "" {
		o.OutputDir = d.OutputDir
	}
	if o.FilePattern == "" {
		o.FilePattern = d.FilePattern
	}
	if o.Weeks == 0 {
		o.Weeks = d.Weeks
	}
	if o.Bins == 0 {
		o.Bins = d.Bins
	}
	if o.FigureSize == (charts.FigureSize{}) {
		o.FigureSize = d.FigureSize
	}
	return o
}

// ChartPath returns the output path of a chart.
func (o Options) ChartPath(plant string, kind models.ChartKind) string {
	name := strings.NewReplacer("{plant}", plant, "{kind}", string(kind)).Replace(o.FilePattern)
	return filepath.Join(o.OutputDir, name)
}

// WorkbookPath returns the output path of the xlsx export.
func (o Options) WorkbookPath(plant string) string {
	return filepath.Join(o.OutputDir, plant+"_data.xlsx")
}
