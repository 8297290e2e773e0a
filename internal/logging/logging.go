// Package logging holds the slog plumbing shared by the stable owners.
// Owners log nothing unless the caller supplies a logger.
package logging

import (
	"log/slog"

	"github.com/google/uuid"
)

// Attribute keys used in every owner record.
const (
	KeyOwner = "owner"
	KeyKind  = "kind"
)

var discard = slog.New(slog.DiscardHandler)

// Discard returns a logger that drops all output.
func Discard() *slog.Logger { return discard }

// ForOwner returns base (or Discard if nil) scoped to one owner.
func ForOwner(base *slog.Logger, kind string, id uuid.UUID) *slog.Logger {
	if base == nil {
		return discard
	}
	return base.With(slog.String(KeyOwner, id.String()), slog.String(KeyKind, kind))
}
