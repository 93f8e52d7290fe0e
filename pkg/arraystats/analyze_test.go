package arraystats

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/plantstats-go/pkg/arraystats/parser"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestAnalyze(t *testing.T) {
	path := writeFile(t, "numpy\narr=[1, 2, 3, 4]\nmatplotlib\n")

	summary, err := Analyze(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if summary.Mean != 2.5 {
		t.Errorf("Expected mean 2.5, got %v", summary.Mean)
	}
	if math.Abs(summary.StdDev-1.118033988749895) > 1e-12 {
		t.Errorf("Expected std dev ~1.118, got %v", summary.StdDev)
	}
	if len(summary.Values) != 4 {
		t.Errorf("Expected 4 values, got %d", len(summary.Values))
	}
}

func TestAnalyzeCustomMarker(t *testing.T) {
	path := writeFile(t, "samples=(10, 20)\n")

	summary, err := Analyze(path, Options{Marker: "samples="})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if summary.Mean != 15 || summary.StdDev != 5 {
		t.Errorf("Expected mean 15 and std dev 5, got %v and %v", summary.Mean, summary.StdDev)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
		stage   string
	}{
		{"no marker", "numpy\nmatplotlib\n", parser.ErrMarkerNotFound, "parse"},
		{"empty array", "arr=[]\n", ErrEmptyArray, "stats"},
		{"unsafe literal", "arr=__import__('os').getcwd()\n", parser.ErrInvalidLiteral, "parse"},
		{"bad element", "arr=[1, two]\n", parser.ErrInvalidLiteral, "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)
			_, err := Analyze(path, DefaultOptions())
			if !errors.Is(err, tt.target) {
				t.Fatalf("Expected %v, got %v", tt.target, err)
			}
			var analysisErr *AnalysisError
			if !errors.As(err, &analysisErr) {
				t.Fatalf("Expected *AnalysisError, got %T", err)
			}
			if analysisErr.Stage != tt.stage || analysisErr.Path != path {
				t.Errorf("Expected stage %q path %q, got %q %q", tt.stage, path, analysisErr.Stage, analysisErr.Path)
			}
		})
	}
}

func TestAnalyzeFileNotFound(t *testing.T) {
	_, err := Analyze(filepath.Join(t.TempDir(), "missing.txt"), DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestAnalyzeReader(t *testing.T) {
	summary, err := AnalyzeReader(strings.NewReader("arr=[2, 4, 4, 4, 5, 5, 7, 9]"), Options{})
	if err != nil {
		t.Fatalf("AnalyzeReader failed: %v", err)
	}
	if summary.Mean != 5 {
		t.Errorf("Expected mean 5, got %v", summary.Mean)
	}
	if math.Abs(summary.StdDev-2) > 1e-12 {
		t.Errorf("Expected std dev 2, got %v", summary.StdDev)
	}
}

func TestCompute(t *testing.T) {
	if _, err := Compute(nil); !errors.Is(err, ErrEmptyArray) {
		t.Errorf("Expected ErrEmptyArray, got %v", err)
	}

	summary, err := Compute([]float64{3})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if summary.Mean != 3 || summary.StdDev != 0 {
		t.Errorf("Expected mean 3 std dev 0, got %v %v", summary.Mean, summary.StdDev)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{2.5, "2.5"},
		{3, "3.0"},
		{0, "0.0"},
		{-4, "-4.0"},
		{1.118033988749895, "1.118033988749895"},
		{0.1, "0.1"},
		{1234567, "1234567.0"},
		{1e16, "1e+16"},
		{1.5e-05, "1.5e-05"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}

	for _, tt := range tests {
		result := FormatValue(tt.input)
		if result != tt.expected {
			t.Errorf("FormatValue(%v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
