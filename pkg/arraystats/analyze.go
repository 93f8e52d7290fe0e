package arraystats

import (
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/ukaji3/plantstats-go/internal/log"
	"github.com/ukaji3/plantstats-go/pkg/arraystats/parser"
)

// Summary holds the parsed array and its descriptive statistics.
type Summary struct {
	// Values is the parsed array in file order.
	Values []float64
	// Mean is the arithmetic mean.
	Mean float64
	// StdDev is the population standard deviation (denominator n).
	StdDev float64
}

// Analyze reads the file at path, parses the array on the first line that
// contains the marker and computes its statistics.
func Analyze(path string, opts Options) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewAnalysisError(path, "read", ErrFileNotFound)
		}
		return nil, NewAnalysisError(path, "read", err)
	}
	defer f.Close()

	summary, stage, err := analyze(f, opts)
	if err != nil {
		return nil, NewAnalysisError(path, stage, err)
	}
	return summary, nil
}

// AnalyzeReader is Analyze for an already opened input.
func AnalyzeReader(r io.Reader, opts Options) (*Summary, error) {
	summary, _, err := analyze(r, opts)
	return summary, err
}

func analyze(r io.Reader, opts Options) (*Summary, string, error) {
	literal, err := parser.FindMarkerValue(r, opts.marker())
	if err != nil {
		return nil, "parse", err
	}
	log.Debug().Str("literal", literal).Msg("found array line")

	values, err := parser.ParseNumericList(literal)
	if err != nil {
		return nil, "parse", err
	}

	summary, err := Compute(values)
	if err != nil {
		return nil, "stats", err
	}
	return summary, "", nil
}

// Compute returns the mean and population standard deviation of values.
func Compute(values []float64) (*Summary, error) {
	if len(values) == 0 {
		return nil, ErrEmptyArray
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return nil, err
	}
	stdDev, err := stats.StandardDeviationPopulation(values)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("count", len(values)).Float64("mean", mean).Float64("std_dev", stdDev).Msg("computed statistics")

	return &Summary{
		Values: values,
		Mean:   mean,
		StdDev: stdDev,
	}, nil
}

// FormatValue renders v as the shortest decimal that round-trips, keeping a
// ".0" suffix on integral values so 3 prints as "3.0". Magnitudes below 1e-4
// or from 1e16 upward use exponent notation.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
