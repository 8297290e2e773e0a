package vec

import "log/slog"

// defaultCapacity is the initial length of the cell index when no hint is given.
const defaultCapacity = 16

// Options configures an Owner.
type Options struct {
	// Capacity pre-sizes the cell index. Growing past it is always allowed;
	// the hint only saves early reallocations of the index.
	// Default: 16
	Capacity int

	// Logger receives debug records for child and lifetime events.
	// Default: nil (discard)
	Logger *slog.Logger
}

// DefaultOptions returns the options used when New is given nil.
func DefaultOptions() *Options {
	return &Options{
		Capacity: defaultCapacity,
	}
}
