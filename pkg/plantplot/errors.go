package plantplot

import (
	"errors"
	"fmt"

	"github.com/ukaji3/plantstats-go/pkg/plantplot/models"
)

// ErrMissingPlant indicates the plant name is empty.
var ErrMissingPlant = errors.New("plant name is required")

// ErrInvalidPlant indicates the plant name cannot be used in a file name.
var ErrInvalidPlant = errors.New("invalid plant name")

// ErrEmptySeries indicates a series has no samples.
var ErrEmptySeries = errors.New("series must have at least one sample")

// ErrInvalidSample indicates a sample is NaN or infinite.
var ErrInvalidSample = errors.New("sample must be a finite number")

// ErrLengthMismatch indicates the height and leaf count series are not paired.
var ErrLengthMismatch = errors.New("height and leaf count series differ in length")

// ErrTooManySamples indicates the height series is longer than the week axis.
var ErrTooManySamples = errors.New("height series is longer than the week axis")

// ErrInvalidOptions indicates the options cannot produce charts.
var ErrInvalidOptions = errors.New("invalid options")

// RenderError represents an error while rendering or writing one chart.
type RenderError struct {
	Kind models.ChartKind
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s chart %s: %v", e.Kind, e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(kind models.ChartKind, path string, err error) *RenderError {
	return &RenderError{
		Kind: kind,
		Path: path,
		Err:  err,
	}
}
