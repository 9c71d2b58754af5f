// Package store provides the thin read-only profile store behind the
// "internal" search mode: a PostgreSQL table when DATABASE_URL is configured,
// or a compiled-in deterministic mock set otherwise. The search core never
// writes profiles; persistence is owned by an external collaborator.
package store

import (
	"context"

	"github.com/A-r-j-u001/OSINT-Hive/internal/profile"
)

// Store lists internal candidate profiles. Implementations must be safe for
// concurrent use.
type Store interface {
	// List returns every internal profile in stable order.
	List(ctx context.Context) ([]profile.CanonicalProfile, error)
	// GetByID returns the profile with the given identifier, or nil when no
	// such profile exists.
	GetByID(ctx context.Context, id string) (*profile.CanonicalProfile, error)
	// Close releases any held resources.
	Close()
}
