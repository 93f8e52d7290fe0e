package plantplot

import (
	"fmt"
	"math"
	"strings"

	"github.com/ukaji3/plantstats-go/pkg/plantplot/models"
)

// Validate checks set and opts before anything is written.
//
// Height and leaf count must pair up one to one for the scatter chart. The
// line chart places height sample i on week i+1, so a height series may be
// shorter than the week axis but never longer. Zero option fields take
// their defaults.
func Validate(set models.MeasurementSet, opts Options) error {
	opts = opts.withDefaults()
	if err := validateOptions(opts); err != nil {
		return err
	}

	if strings.TrimSpace(set.Plant) == "" {
		return ErrMissingPlant
	}
	if set.Plant == "." || set.Plant == ".." || strings.ContainsAny(set.Plant, `/\`+"\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidPlant, set.Plant)
	}

	series := []struct {
		name string
		n    int
	}{
		{"height", len(set.Height)},
		{"leaf_count", len(set.LeafCount)},
		{"dry_weight", len(set.DryWeight)},
	}
	for _, s := range series {
		if s.n == 0 {
			return fmt.Errorf("%s: %w", s.name, ErrEmptySeries)
		}
	}

	for _, s := range []struct {
		name   string
		values []float64
	}{
		{"height", set.Height},
		{"dry_weight", set.DryWeight},
	} {
		for i, v := range s.values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s[%d] = %v: %w", s.name, i, v, ErrInvalidSample)
			}
		}
	}

	if len(set.Height) != len(set.LeafCount) {
		return fmt.Errorf("%w: %d heights, %d leaf counts",
			ErrLengthMismatch, len(set.Height), len(set.LeafCount))
	}
	if len(set.Height) > opts.Weeks {
		return fmt.Errorf("%w: %d samples, %d weeks",
			ErrTooManySamples, len(set.Height), opts.Weeks)
	}

	return nil
}

func validateOptions(opts Options) error {
	if opts.Weeks < 1 {
		return fmt.Errorf("%w: weeks must be positive, got %d", ErrInvalidOptions, opts.Weeks)
	}
	if opts.Bins < 1 {
		return fmt.Errorf("%w: bins must be positive, got %d", ErrInvalidOptions, opts.Bins)
	}
	if opts.FigureSize.Width <= 0 || opts.FigureSize.Height <= 0 {
		return fmt.Errorf("%w: figure size %s", ErrInvalidOptions, opts.FigureSize)
	}
	if !strings.Contains(opts.FilePattern, "{kind}") {
		return fmt.Errorf("%w: file pattern %q must contain {kind}", ErrInvalidOptions, opts.FilePattern)
	}
	return nil
}
