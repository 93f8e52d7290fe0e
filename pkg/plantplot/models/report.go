package models

// SeriesSummary describes one measurement series.
type SeriesSummary struct {
	// Name is the series display name.
	Name string `json:"name"`
	// Count is the number of samples.
	Count int `json:"count"`
	// Mean is the arithmetic mean.
	Mean float64 `json:"mean"`
	// StdDev is the population standard deviation.
	StdDev float64 `json:"std_dev"`
	// Min is the smallest sample.
	Min float64 `json:"min"`
	// Max is the largest sample.
	Max float64 `json:"max"`
}

// Report lists everything a render pass wrote.
type Report struct {
	// Plant is the plant identifier.
	Plant string `json:"plant"`
	// OutputDir is the directory holding the files.
	OutputDir string `json:"output_dir"`
	// Charts contains the written charts in render order.
	Charts []Chart `json:"charts"`
	// Workbook is the path of the exported workbook, empty when disabled.
	Workbook string `json:"workbook,omitempty"`
}
