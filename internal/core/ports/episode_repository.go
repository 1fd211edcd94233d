// Package ports defines the persistence contracts of the packing domain.
// Adapters implement them; application handlers depend only on these interfaces.
package ports

import (
	"context"

	"packing/internal/core/domain/model/episode"
	"packing/internal/core/domain/model/kernel"
)

// EpisodeRepository defines the persistence contract for episode aggregates.
// An episode is stored as its configuration, its status and the ordered list of
// accepted placements; the occupancy grid is rebuilt by replay on load.
type EpisodeRepository interface {
	// Add persists a new episode together with its shipment catalog.
	Add(ctx context.Context, aggregate *episode.Episode) error

	// Update persists the status and the placement list of an existing episode.
	// Placements removed by a reset are deleted.
	Update(ctx context.Context, aggregate *episode.Episode) error

	// Get loads an episode by its identifier.
	// Returns *errs.ObjectNotFoundError when no such episode exists.
	Get(ctx context.Context, id kernel.UUID) (*episode.Episode, error)

	// GetAllRunning loads every episode that still accepts steps.
	GetAllRunning(ctx context.Context) ([]*episode.Episode, error)
}
