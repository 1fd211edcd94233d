package queries

import (
	"context"
	"errors"

	"packing/internal/core/domain/model/container"
	"packing/internal/core/domain/model/episode"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/services"
)

// EpisodeReader loads an episode aggregate. ports.EpisodeRepository satisfies it.
type EpisodeReader interface {
	Get(ctx context.Context, id kernel.UUID) (*episode.Episode, error)
}

// GetEpisodeEvaluationQueryHandler replays a stored episode and reports every
// container metric together with the reward the current state earns.
type GetEpisodeEvaluationQueryHandler struct {
	reader EpisodeReader
	scorer services.PlacementScorer
}

// NewGetEpisodeEvaluationQueryHandler creates an evaluation handler.
func NewGetEpisodeEvaluationQueryHandler(
	reader EpisodeReader,
	scorer services.PlacementScorer,
) GetEpisodeEvaluationQueryHandler {
	return GetEpisodeEvaluationQueryHandler{reader: reader, scorer: scorer}
}

// Handle executes the query.
// Returns *errs.ObjectNotFoundError from the reader when the episode does not exist.
func (h GetEpisodeEvaluationQueryHandler) Handle(
	ctx context.Context,
	query GetEpisodeEvaluationQuery,
) (GetEpisodeEvaluationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetEpisodeEvaluationQueryResponse{}, err
	}

	ep, err := h.reader.Get(ctx, query.EpisodeID())
	if err != nil {
		return GetEpisodeEvaluationQueryResponse{}, err
	}

	c := ep.Container()
	response := GetEpisodeEvaluationQueryResponse{
		ID:                     ep.ID(),
		Status:                 ep.Status(),
		ContainerLength:        c.Length(),
		ContainerHeight:        c.Height(),
		Valid:                  c.Valid(),
		OutOfBounds:            len(c.OutOfBoundsShipments()),
		OverlappingPairs:       c.OverlappingPairs(),
		TotalVolume:            c.TotalVolume(),
		RemainingVolume:        c.RemainingVolume(),
		DegreeOfFilling:        c.DegreeOfFilling(),
		Weight:                 c.Weight(),
		OptimalCenterOfGravity: c.OptimalCenterOfGravity(),
		Map:                    c.Map(),
		RenderedMap:            c.RenderMap(),
		Placements:             ep.Placements(),
	}

	cog, err := c.CenterOfGravity()
	switch {
	case errors.Is(err, container.ErrCenterOfGravityUndefined):
		return response, nil
	case err != nil:
		return GetEpisodeEvaluationQueryResponse{}, err
	}
	response.CenterOfGravity = &cog

	distance, err := c.DistanceOptimalCOG()
	if err != nil {
		return GetEpisodeEvaluationQueryResponse{}, err
	}
	response.DistanceOptimalCOG = &distance

	reward, err := h.scorer.Score(c)
	if err != nil {
		return GetEpisodeEvaluationQueryResponse{}, err
	}
	response.Reward = &reward

	return response, nil
}
