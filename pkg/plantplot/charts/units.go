// Package charts builds the plant charts with gonum/plot.
package charts

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
)

// FigureSize is a canvas size in inches.
type FigureSize struct {
	Width  float64
	Height float64
}

// DefaultFigureSize is a 10 by 6 inch canvas.
var DefaultFigureSize = FigureSize{Width: 10, Height: 6}

// ParseFigureSize parses a "WxH" size in inches, e.g. "10x6" or "12.5X4".
func ParseFigureSize(s string) (FigureSize, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return FigureSize{}, fmt.Errorf("invalid figure size %q: expected WIDTHxHEIGHT", s)
	}

	width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil || width <= 0 {
		return FigureSize{}, fmt.Errorf("invalid figure width %q", w)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil || height <= 0 {
		return FigureSize{}, fmt.Errorf("invalid figure height %q", h)
	}

	return FigureSize{Width: width, Height: height}, nil
}

// Canvas converts the size to vg lengths.
func (s FigureSize) Canvas() (width, height vg.Length) {
	return vg.Length(s.Width) * vg.Inch, vg.Length(s.Height) * vg.Inch
}

func (s FigureSize) String() string {
	return strconv.FormatFloat(s.Width, 'f', -1, 64) + "x" + strconv.FormatFloat(s.Height, 'f', -1, 64)
}
