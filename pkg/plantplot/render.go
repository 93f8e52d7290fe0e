package plantplot

import (
	"fmt"
	"os"

	"github.com/ukaji3/plantstats-go/internal/log"
	"github.com/ukaji3/plantstats-go/pkg/plantplot/charts"
	"github.com/ukaji3/plantstats-go/pkg/plantplot/models"
	"github.com/ukaji3/plantstats-go/pkg/plantplot/workbook"
)

// Render validates set, then writes the scatter, histogram and line charts
// (and the workbook when enabled) into opts.OutputDir.
//
// Validation failures write nothing. If a chart fails to render, the charts
// written before it stay on disk and the returned report lists them along
// with the error.
func Render(set models.MeasurementSet, opts Options) (*models.Report, error) {
	opts = opts.withDefaults()
	if err := Validate(set, opts); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	report := &models.Report{
		Plant:     set.Plant,
		OutputDir: opts.OutputDir,
	}

	cfg := charts.Config{Bins: opts.Bins, Weeks: opts.Weeks}
	for _, kind := range models.ChartKinds {
		chart := charts.Describe(kind, set.Plant)
		chart.Path = opts.ChartPath(set.Plant, kind)

		p, err := charts.Build(kind, set, cfg)
		if err != nil {
			return report, NewRenderError(kind, chart.Path, err)
		}
		if err := charts.Save(p, opts.FigureSize, chart.Path); err != nil {
			return report, NewRenderError(kind, chart.Path, err)
		}

		log.Info().Str("plant", set.Plant).Str("kind", string(kind)).Str("path", chart.Path).Msg("chart written")
		report.Charts = append(report.Charts, chart)
	}

	if opts.Workbook {
		path := opts.WorkbookPath(set.Plant)
		if err := workbook.Write(set, charts.WeekLabels(opts.Weeks), path); err != nil {
			return report, fmt.Errorf("write workbook %s: %w", path, err)
		}
		log.Info().Str("plant", set.Plant).Str("path", path).Msg("workbook written")
		report.Workbook = path
	}

	return report, nil
}
