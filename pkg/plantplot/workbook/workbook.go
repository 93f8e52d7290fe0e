// Package workbook exports a measurement set to an xlsx workbook.
package workbook

import (
	"io"

	"github.com/ukaji3/plantstats-go/internal/fileutil"
	"github.com/ukaji3/plantstats-go/pkg/plantplot/models"
	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	// MeasurementsSheet holds one row per sample index.
	MeasurementsSheet = "Measurements"
	// SummarySheet holds one row per series.
	SummarySheet = "Summary"
)

var (
	measurementsHeader = []interface{}{"Index", "Week", "Height (cm)", "Leaf Count", "Dry Weight (g)"}
	summaryHeader      = []interface{}{"Series", "Count", "Mean", "Std Dev", "Min", "Max"}
)

// Summarize computes per-series statistics for set. Empty series are skipped.
func Summarize(set models.MeasurementSet) []models.SeriesSummary {
	series := []struct {
		name   string
		values []float64
	}{
		{"Height (cm)", set.Height},
		{"Leaf Count", set.LeafCountValues()},
		{"Dry Weight (g)", set.DryWeight},
	}

	var result []models.SeriesSummary
	for _, s := range series {
		if len(s.values) == 0 {
			continue
		}
		mean, std := stat.PopMeanStdDev(s.values, nil)
		result = append(result, models.SeriesSummary{
			Name:   s.name,
			Count:  len(s.values),
			Mean:   mean,
			StdDev: std,
			Min:    floats.Min(s.values),
			Max:    floats.Max(s.values),
		})
	}
	return result
}

// Write saves set to path with a Measurements sheet and a Summary sheet.
// weeks labels the sample rows; rows past the last label have no week.
func Write(set models.MeasurementSet, weeks []string, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MeasurementsSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}

	if err := writeMeasurements(f, set, weeks); err != nil {
		return err
	}
	if err := writeSummary(f, Summarize(set)); err != nil {
		return err
	}

	return fileutil.WriteFileAtomically(path, 0644, func(w io.Writer) error {
		_, err := f.WriteTo(w)
		return err
	})
}

func writeMeasurements(f *excelize.File, set models.MeasurementSet, weeks []string) error {
	if err := f.SetSheetRow(MeasurementsSheet, "A1", &measurementsHeader); err != nil {
		return err
	}

	rows := max(len(set.Height), len(set.LeafCount), len(set.DryWeight))
	for i := 0; i < rows; i++ {
		row := []interface{}{i + 1, nil, nil, nil, nil}
		if i < len(weeks) {
			row[1] = weeks[i]
		}
		if i < len(set.Height) {
			row[2] = set.Height[i]
		}
		if i < len(set.LeafCount) {
			row[3] = set.LeafCount[i]
		}
		if i < len(set.DryWeight) {
			row[4] = set.DryWeight[i]
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(MeasurementsSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, summaries []models.SeriesSummary) error {
	if err := f.SetSheetRow(SummarySheet, "A1", &summaryHeader); err != nil {
		return err
	}

	for i, s := range summaries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{s.Name, s.Count, s.Mean, s.StdDev, s.Min, s.Max}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
