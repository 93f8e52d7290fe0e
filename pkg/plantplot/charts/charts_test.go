package charts

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/plantstats-go/pkg/plantplot/models"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func tomato() models.MeasurementSet {
	return models.MeasurementSet{
		Plant:     "Tomato",
		Height:    []float64{5, 10, 15},
		LeafCount: []int{2, 4, 6},
		DryWeight: []float64{1.0, 2.0, 3.0, 2.5, 1.5},
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		kind   models.ChartKind
		title  string
		xTitle string
		yTitle string
	}{
		{models.ChartScatter, "Height vs Leaf Count for Tomato", "Height (cm)", "Leaf Count"},
		{models.ChartHistogram, "Histogram of Dry Weight for Tomato", "Dry Weight (g)", "Frequency"},
		{models.ChartLine, "Tomato Height Over Time", "Week", "Height (cm)"},
	}

	for _, tt := range tests {
		chart := Describe(tt.kind, "Tomato")
		if chart.Kind != tt.kind || chart.Title != tt.title ||
			chart.XAxisTitle != tt.xTitle || chart.YAxisTitle != tt.yTitle {
			t.Errorf("Describe(%q) = %+v", tt.kind, chart)
		}
	}
}

func TestBuildAndSave(t *testing.T) {
	dir := t.TempDir()
	set := tomato()

	for _, kind := range models.ChartKinds {
		p, err := Build(kind, set, DefaultConfig())
		if err != nil {
			t.Fatalf("Build(%q) failed: %v", kind, err)
		}
		if p.Title.Text != Describe(kind, set.Plant).Title {
			t.Errorf("Build(%q) title = %q", kind, p.Title.Text)
		}

		path := filepath.Join(dir, string(kind)+".png")
		if err := Save(p, DefaultFigureSize, path); err != nil {
			t.Fatalf("Save(%q) failed: %v", kind, err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read %s: %v", path, err)
		}
		if !bytes.HasPrefix(data, pngMagic) {
			t.Errorf("%s is not a PNG file", path)
		}
	}
}

func TestBuildUnknownKind(t *testing.T) {
	if _, err := Build("pie", tomato(), DefaultConfig()); err == nil {
		t.Error("Expected error for unknown chart kind")
	}
}

func TestScatterLengthMismatch(t *testing.T) {
	set := tomato()
	set.LeafCount = []int{1, 2}
	if _, err := Scatter(set); err == nil {
		t.Error("Expected error for mismatched series")
	}
}

func TestLineWeekAxis(t *testing.T) {
	p, err := Line(tomato(), 5)
	if err != nil {
		t.Fatalf("Line failed: %v", err)
	}
	if p.X.Min != 0 || p.X.Max != 4 {
		t.Errorf("Expected X axis [0, 4], got [%v, %v]", p.X.Min, p.X.Max)
	}

	ticks := p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max)
	if len(ticks) != 5 || ticks[0].Label != "Week 1" || ticks[4].Label != "Week 5" {
		t.Errorf("Unexpected week ticks: %+v", ticks)
	}

	set := tomato()
	set.Height = []float64{1, 2, 3, 4, 5, 6}
	if _, err := Line(set, 5); err == nil {
		t.Error("Expected error for more samples than weeks")
	}
}

func TestHistogramBins(t *testing.T) {
	p, err := Histogram(tomato(), 5)
	if err != nil {
		t.Fatalf("Histogram failed: %v", err)
	}
	if math.Abs(p.X.Min-1) > 1e-9 || math.Abs(p.X.Max-3) > 1e-9 {
		t.Errorf("Expected X axis [1, 3], got [%v, %v]", p.X.Min, p.X.Max)
	}
}

func TestSaveFormat(t *testing.T) {
	p, err := Scatter(tomato())
	if err != nil {
		t.Fatalf("Scatter failed: %v", err)
	}

	dir := t.TempDir()
	if err := Save(p, DefaultFigureSize, filepath.Join(dir, "noext")); err == nil {
		t.Error("Expected error for missing extension")
	}
	if err := Save(p, DefaultFigureSize, filepath.Join(dir, "chart.bogus")); err == nil {
		t.Error("Expected error for unsupported format")
	}
	if err := Save(p, DefaultFigureSize, filepath.Join(dir, "chart.svg")); err != nil {
		t.Errorf("Save svg failed: %v", err)
	}
}

func TestWeekLabels(t *testing.T) {
	labels := WeekLabels(3)
	expected := []string{"Week 1", "Week 2", "Week 3"}
	if len(labels) != len(expected) {
		t.Fatalf("WeekLabels(3) = %v", labels)
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("WeekLabels(3)[%d] = %q, expected %q", i, labels[i], expected[i])
		}
	}
}

func TestParseFigureSize(t *testing.T) {
	tests := []struct {
		input    string
		expected FigureSize
		wantErr  bool
	}{
		{"10x6", FigureSize{10, 6}, false},
		{"12.5X4", FigureSize{12.5, 4}, false},
		{" 8 x 3 ", FigureSize{8, 3}, false},
		{"10", FigureSize{}, true},
		{"0x6", FigureSize{}, true},
		{"10x-1", FigureSize{}, true},
		{"axb", FigureSize{}, true},
	}

	for _, tt := range tests {
		result, err := ParseFigureSize(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFigureSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseFigureSize(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}

	if s := DefaultFigureSize.String(); s != "10x6" {
		t.Errorf("DefaultFigureSize.String() = %q", s)
	}
}
