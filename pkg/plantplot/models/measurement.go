// Package models defines data structures for plant chart generation.
package models

// MeasurementSet holds the samples recorded for one plant.
type MeasurementSet struct {
	// Plant is the plant identifier used in titles and file names.
	Plant string `json:"plant"`
	// Height holds height samples in centimeters, one per week.
	Height []float64 `json:"height"`
	// LeafCount holds leaf counts paired by index with Height.
	LeafCount []int `json:"leaf_count"`
	// DryWeight holds dry weight samples in grams.
	DryWeight []float64 `json:"dry_weight"`
}

// LeafCountValues returns the leaf counts as float64 values.
func (m MeasurementSet) LeafCountValues() []float64 {
	values := make([]float64, len(m.LeafCount))
	for i, n := range m.LeafCount {
		values[i] = float64(n)
	}
	return values
}
