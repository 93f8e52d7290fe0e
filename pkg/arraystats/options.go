// Package arraystats computes descriptive statistics for a numeric array
// declared in a configuration-style text file.
package arraystats

const (
	// DefaultPath is the file read when no path is configured.
	DefaultPath = "requirements.txt"
	// DefaultMarker identifies the line holding the array literal.
	DefaultMarker = "arr="
)

// Options configures analysis behavior.
type Options struct {
	// Marker is the substring that selects the array line.
	// If empty, DefaultMarker is used.
	Marker string
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		Marker: DefaultMarker,
	}
}

// marker returns the configured marker or the default.
func (o Options) marker() string {
	if o.Marker == "" {
		return DefaultMarker
	}
	return o.Marker
}
