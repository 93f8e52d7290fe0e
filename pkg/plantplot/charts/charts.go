package charts

import (
	"fmt"
	"image/color"

	"github.com/ukaji3/plantstats-go/pkg/plantplot/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	blue  = color.RGBA{B: 255, A: 255}
	green = color.RGBA{G: 128, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	black = color.RGBA{A: 255}
)

// Config holds layout parameters shared by the builders.
type Config struct {
	// Bins is the number of histogram bins.
	Bins int
	// Weeks is the number of labels on the line chart X axis.
	Weeks int
}

// DefaultConfig returns the default 5 bins and 5 weeks.
func DefaultConfig() Config {
	return Config{Bins: 5, Weeks: 5}
}

// Describe returns the titles used for a chart of the given kind.
func Describe(kind models.ChartKind, plant string) models.Chart {
	chart := models.Chart{Kind: kind}
	switch kind {
	case models.ChartScatter:
		chart.Title = fmt.Sprintf("Height vs Leaf Count for %s", plant)
		chart.XAxisTitle = "Height (cm)"
		chart.YAxisTitle = "Leaf Count"
	case models.ChartHistogram:
		chart.Title = fmt.Sprintf("Histogram of Dry Weight for %s", plant)
		chart.XAxisTitle = "Dry Weight (g)"
		chart.YAxisTitle = "Frequency"
	case models.ChartLine:
		chart.Title = fmt.Sprintf("%s Height Over Time", plant)
		chart.XAxisTitle = "Week"
		chart.YAxisTitle = "Height (cm)"
	}
	return chart
}

// Build creates the plot for kind from set.
func Build(kind models.ChartKind, set models.MeasurementSet, cfg Config) (*plot.Plot, error) {
	switch kind {
	case models.ChartScatter:
		return Scatter(set)
	case models.ChartHistogram:
		return Histogram(set, cfg.Bins)
	case models.ChartLine:
		return Line(set, cfg.Weeks)
	default:
		return nil, fmt.Errorf("unknown chart kind %q", kind)
	}
}

// newPlot returns a plot titled for kind with a background grid.
func newPlot(kind models.ChartKind, plant string) *plot.Plot {
	chart := Describe(kind, plant)

	p := plot.New()
	p.Title.Text = chart.Title
	p.X.Label.Text = chart.XAxisTitle
	p.Y.Label.Text = chart.YAxisTitle
	p.Add(plotter.NewGrid())
	return p
}

// Scatter plots height against leaf count, paired by index.
func Scatter(set models.MeasurementSet) (*plot.Plot, error) {
	if len(set.Height) != len(set.LeafCount) {
		return nil, fmt.Errorf("scatter needs paired series: %d heights, %d leaf counts",
			len(set.Height), len(set.LeafCount))
	}

	pts := make(plotter.XYs, len(set.Height))
	for i := range set.Height {
		pts[i].X = set.Height[i]
		pts[i].Y = float64(set.LeafCount[i])
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = blue
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(3)

	p := newPlot(models.ChartScatter, set.Plant)
	p.Add(s)
	return p, nil
}

// Histogram bins the dry weight samples.
func Histogram(set models.MeasurementSet, bins int) (*plot.Plot, error) {
	h, err := plotter.NewHist(plotter.Values(set.DryWeight), bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = green
	h.LineStyle.Color = black
	h.LineStyle.Width = vg.Points(1)

	p := newPlot(models.ChartHistogram, set.Plant)
	p.Add(h)
	return p, nil
}

// Line plots height over the week axis with a marker at each sample.
// Sample i sits on "Week i+1"; the axis always shows all weeks.
func Line(set models.MeasurementSet, weeks int) (*plot.Plot, error) {
	if len(set.Height) > weeks {
		return nil, fmt.Errorf("%d height samples do not fit %d weeks", len(set.Height), weeks)
	}

	pts := make(plotter.XYs, len(set.Height))
	for i, h := range set.Height {
		pts[i].X = float64(i)
		pts[i].Y = h
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.Color = red
	points.GlyphStyle.Color = red
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(3)

	p := newPlot(models.ChartLine, set.Plant)
	p.Add(line, points)
	p.NominalX(WeekLabels(weeks)...)
	p.X.Min = 0
	p.X.Max = float64(weeks - 1)
	return p, nil
}

// WeekLabels returns "Week 1" through "Week n".
func WeekLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("Week %d", i+1)
	}
	return labels
}
