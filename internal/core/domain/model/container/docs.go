// Package container provides the Container aggregate: a fixed-size 2D region into
// which shipments are packed, together with the validation and scoring primitives
// used to judge a packing arrangement.
//
// The package includes:
//   - Container: the aggregate root owning the packed shipments and the occupancy grid
//   - PackedShipment: a shipment bound to the lower-left corner it was placed at
//   - Footprint: the half-open integer rectangle a packed shipment covers
//
// Key business rules:
//   - Packing never rejects a placement in the default mode; bounds and overlap
//     violations are reported by Valid, not prevented
//   - The occupancy grid is a cache derived from the shipment list and counts every
//     footprint covering a cell, so overlapping cells hold values above one
//   - Footprints that only share an edge do not overlap
//   - Scoring quantities (DegreeOfFilling, DistanceOptimalCOG) keep their historical
//     formulas because rewards computed from them must stay comparable
package container
