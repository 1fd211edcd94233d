// Package services contains domain services that operate on several domain
// objects at once and do not belong to a single aggregate.
//
// PlacementScorer turns the state of a container into the scalar reward a
// packing driver optimizes: invalid arrangements get a fixed penalty, valid
// ones a weighted blend of the filling ratio and the center-of-gravity balance.
package services
