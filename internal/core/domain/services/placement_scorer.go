package services

import (
	"errors"
	"fmt"

	"packing/internal/core/domain/model/container"
	"packing/internal/pkg/errs"
)

const (
	// InvalidPlacementReward is the score of a container that fails Valid.
	InvalidPlacementReward = -1.0

	defaultFillingWeight = 0.5
	defaultBalanceWeight = 0.5
)

// PlacementScorer is a domain service that rates a packing arrangement.
//
// For a valid container the score is
//
//	fillingWeight*DegreeOfFilling + balanceWeight*1/(1+DistanceOptimalCOG)
//
// and for an invalid one it is InvalidPlacementReward.
//
// Example usage:
//
//	scorer := services.NewDefaultPlacementScorer()
//	reward, err := scorer.Score(c)
//	if errors.Is(err, container.ErrCenterOfGravityUndefined) {
//	    // nothing packed yet
//	}
type PlacementScorer struct {
	fillingWeight float64
	balanceWeight float64
}

// NewPlacementScorer creates a scorer with custom term weights.
//
// Parameters:
//   - fillingWeight: factor of the DegreeOfFilling term (must be >= 0)
//   - balanceWeight: factor of the balance term (must be >= 0)
//
// Returns:
//   - PlacementScorer: the configured scorer
//   - error: joined validation errors
func NewPlacementScorer(fillingWeight, balanceWeight float64) (PlacementScorer, error) {
	var errList []error
	if fillingWeight < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"fillingWeight", fmt.Errorf("%g is negative", fillingWeight)))
	}
	if balanceWeight < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"balanceWeight", fmt.Errorf("%g is negative", balanceWeight)))
	}
	if err := errors.Join(errList...); err != nil {
		return PlacementScorer{}, err
	}

	return PlacementScorer{fillingWeight: fillingWeight, balanceWeight: balanceWeight}, nil
}

// NewDefaultPlacementScorer weighs both terms equally.
func NewDefaultPlacementScorer() PlacementScorer {
	return PlacementScorer{fillingWeight: defaultFillingWeight, balanceWeight: defaultBalanceWeight}
}

// FillingWeight returns the factor of the DegreeOfFilling term.
func (s PlacementScorer) FillingWeight() float64 {
	return s.fillingWeight
}

// BalanceWeight returns the factor of the balance term.
func (s PlacementScorer) BalanceWeight() float64 {
	return s.balanceWeight
}

// Score rates c.
//
// Returns:
//   - float64: InvalidPlacementReward for an invalid container, the weighted sum otherwise
//   - error: container.ErrCenterOfGravityUndefined for a valid container without weight,
//     or the constructor error of c
func (s PlacementScorer) Score(c *container.Container) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	if !c.Valid() {
		return InvalidPlacementReward, nil
	}

	distance, err := c.DistanceOptimalCOG()
	if err != nil {
		return 0, err
	}

	return s.fillingWeight*c.DegreeOfFilling() + s.balanceWeight*(1/(1+distance)), nil
}
