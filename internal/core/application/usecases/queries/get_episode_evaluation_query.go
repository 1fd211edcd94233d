// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"packing/internal/core/domain/model/episode"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrGetEpisodeEvaluationQueryIsNotConstructed = errors.New(
	"GetEpisodeEvaluationQuery must be created via NewGetEpisodeEvaluationQuery constructor",
)

// GetEpisodeEvaluationQuery asks for the full scoring breakdown of one episode.
//
// Example:
//
//	query, err := NewGetEpisodeEvaluationQuery(id)
//	if err != nil {
//	    return err
//	}
//	evaluation, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(evaluation.RenderedMap)
type GetEpisodeEvaluationQuery struct { //nolint:recvcheck //using for validation
	episodeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetEpisodeEvaluationQuery creates an evaluation query for the given episode.
func NewGetEpisodeEvaluationQuery(episodeID kernel.UUID) (GetEpisodeEvaluationQuery, error) {
	query := GetEpisodeEvaluationQuery{guard: guard.NewConstructorGuard()}

	if err := query.setEpisodeID(episodeID); err != nil {
		return GetEpisodeEvaluationQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEpisodeEvaluationQuery) Validate() error {
	return q.guard.Validate(ErrGetEpisodeEvaluationQueryIsNotConstructed)
}

// EpisodeID returns the episode to evaluate.
func (q GetEpisodeEvaluationQuery) EpisodeID() kernel.UUID {
	return q.episodeID
}

func (q *GetEpisodeEvaluationQuery) setEpisodeID(episodeID kernel.UUID) error {
	if err := episodeID.Validate(); err != nil {
		return err
	}

	q.episodeID = episodeID
	return nil
}

// GetEpisodeEvaluationQueryResponse is the read model of an evaluated episode.
// CenterOfGravity, DistanceOptimalCOG and Reward are nil while the container
// holds no weight.
type GetEpisodeEvaluationQueryResponse struct {
	ID                     kernel.UUID
	Status                 episode.Status
	ContainerLength        int
	ContainerHeight        int
	Valid                  bool
	OutOfBounds            int
	OverlappingPairs       [][2]int
	TotalVolume            int
	RemainingVolume        int
	DegreeOfFilling        float64
	Weight                 int
	CenterOfGravity        *kernel.Position
	OptimalCenterOfGravity kernel.Position
	DistanceOptimalCOG     *float64
	Reward                 *float64
	Map                    [][]int
	RenderedMap            string
	Placements             []episode.Placement
}
