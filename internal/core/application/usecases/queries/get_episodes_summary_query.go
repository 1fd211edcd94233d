package queries

import (
	"errors"

	"packing/internal/core/domain/model/episode"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrGetEpisodesSummaryQueryIsNotConstructed = errors.New(
	"GetEpisodesSummaryQuery must be created via NewGetEpisodesSummaryQuery constructor",
)

// GetEpisodesSummaryQuery lists every stored episode without replaying it.
type GetEpisodesSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEpisodesSummaryQuery creates a parameterless summary query.
func NewGetEpisodesSummaryQuery() GetEpisodesSummaryQuery {
	return GetEpisodesSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetEpisodesSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetEpisodesSummaryQueryIsNotConstructed)
}

// GetEpisodesSummaryQueryResponse is one row of the episode listing.
type GetEpisodesSummaryQueryResponse struct {
	ID              kernel.UUID
	ContainerLength int
	ContainerHeight int
	Status          episode.Status
	Shipments       int
	Placements      int
}
