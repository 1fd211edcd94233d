// Package servers binds the operations of api/openapi.json to echo.
// Types mirror the document schemas one to one.
package servers

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Shipment defines model for Shipment.
type Shipment struct {
	Length     int     `json:"length"`
	Height     int     `json:"height"`
	Weight     int     `json:"weight"`
	Stackable  *bool   `json:"stackable,omitempty"`
	Rotatable  *bool   `json:"rotatable,omitempty"`
	Identifier *string `json:"identifier,omitempty"`
}

// NewEpisode defines model for NewEpisode.
type NewEpisode struct {
	ContainerLength int        `json:"containerLength"`
	ContainerHeight int        `json:"containerHeight"`
	Shipments       []Shipment `json:"shipments"`
}

// EpisodeCreated defines model for EpisodeCreated.
type EpisodeCreated struct {
	Id openapi_types.UUID `json:"id"`
}

// EpisodeSummary defines model for EpisodeSummary.
type EpisodeSummary struct {
	Id              openapi_types.UUID `json:"id"`
	ContainerLength int                `json:"containerLength"`
	ContainerHeight int                `json:"containerHeight"`
	Status          string             `json:"status"`
	Shipments       int                `json:"shipments"`
	Placements      int                `json:"placements"`
}

// Action defines model for Action.
type Action struct {
	ShipmentIndex int `json:"shipmentIndex"`
	X             int `json:"x"`
	Y             int `json:"y"`
}

// Position defines model for Position.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Observation defines model for Observation.
type Observation struct {
	ContainerState [][]int `json:"containerState"`
	ShipmentInfo   [][]int `json:"shipmentInfo"`
}

// StepResult defines model for StepResult.
type StepResult struct {
	Observation Observation `json:"observation"`
	Reward      float64     `json:"reward"`
	Terminated  bool        `json:"terminated"`
}

// Evaluation defines model for Evaluation.
type Evaluation struct {
	Id                     openapi_types.UUID `json:"id"`
	Status                 string             `json:"status"`
	ContainerLength        int                `json:"containerLength"`
	ContainerHeight        int                `json:"containerHeight"`
	Valid                  bool               `json:"valid"`
	OutOfBounds            int                `json:"outOfBounds"`
	OverlappingPairs       [][]int            `json:"overlappingPairs"`
	TotalVolume            int                `json:"totalVolume"`
	RemainingVolume        int                `json:"remainingVolume"`
	DegreeOfFilling        float64            `json:"degreeOfFilling"`
	Weight                 int                `json:"weight"`
	CenterOfGravity        *Position          `json:"centerOfGravity,omitempty"`
	OptimalCenterOfGravity Position           `json:"optimalCenterOfGravity"`
	DistanceOptimalCog     *float64           `json:"distanceOptimalCog"`
	Reward                 *float64           `json:"reward"`
	Map                    [][]int            `json:"map"`
	RenderedMap            string             `json:"renderedMap"`
	Placements             []Action           `json:"placements"`
}

// CreateEpisodeJSONRequestBody defines body for CreateEpisode for application/json ContentType.
type CreateEpisodeJSONRequestBody = NewEpisode

// StepEpisodeJSONRequestBody defines body for StepEpisode for application/json ContentType.
type StepEpisodeJSONRequestBody = Action
