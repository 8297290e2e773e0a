package hashmap

import (
	"log/slog"

	"golang.org/x/text/cases"
)

// defaultCapacity is the initial map size hint when none is given.
const defaultCapacity = 16

// Options configures an Owner.
type Options[K comparable] struct {
	// Capacity pre-sizes the key table. Growing past it is always allowed.
	// Default: 16
	Capacity int

	// Normalize maps every key before it is stored or looked up, so keys that
	// normalize equal share one entry. Nil means Go == equality on K.
	// Default: nil
	Normalize func(K) K

	// Logger receives debug records for child, rejection and lifetime events.
	// Default: nil (discard)
	Logger *slog.Logger
}

// DefaultOptions returns the options used when New is given nil.
func DefaultOptions[K comparable]() *Options[K] {
	return &Options[K]{
		Capacity: defaultCapacity,
	}
}

// FoldCase is a Normalize function for string keys giving case-insensitive
// lookups with full Unicode case folding ("Straße" and "STRASSE" match).
func FoldCase(key string) string {
	return cases.Fold().String(key)
}
