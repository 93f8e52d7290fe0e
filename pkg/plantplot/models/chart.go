package models

// ChartKind identifies one of the generated charts. Its value forms the
// suffix of the output file name.
type ChartKind string

const (
	// ChartScatter plots height against leaf count.
	ChartScatter ChartKind = "scatter"
	// ChartHistogram bins the dry weight samples.
	ChartHistogram ChartKind = "histogram"
	// ChartLine plots height over the week axis.
	ChartLine ChartKind = "line_plot"
)

// ChartKinds lists the charts in the order they are rendered.
var ChartKinds = []ChartKind{ChartScatter, ChartHistogram, ChartLine}

// Chart represents chart metadata for a written image.
type Chart struct {
	// Kind is the chart kind.
	Kind ChartKind `json:"kind"`
	// Title is the chart title.
	Title string `json:"title"`
	// XAxisTitle is the X-axis title.
	XAxisTitle string `json:"x_axis_title"`
	// YAxisTitle is the Y-axis title.
	YAxisTitle string `json:"y_axis_title"`
	// Path is the file the chart was written to.
	Path string `json:"path"`
}
