package arraystats

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrEmptyArray indicates the mean and standard deviation are undefined
// because the array has no elements.
var ErrEmptyArray = errors.New("mean and standard deviation are undefined for an empty array")

// AnalysisError represents an error while analyzing a file.
type AnalysisError struct {
	Path  string
	Stage string // "read", "parse", "stats"
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analyze %s (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(path, stage string, err error) *AnalysisError {
	return &AnalysisError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
