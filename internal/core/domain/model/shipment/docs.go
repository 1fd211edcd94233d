// Package shipment provides the Shipment value object: a rectangular item with a
// weight and placement flags that can be packed into a container.
//
// Key business rules:
//   - Length, height and weight must be positive
//   - Orientation is fixed: length runs along x, height along y
//   - The identifier is for display only and is not required to be unique
//   - Stackable and rotatable are carried for future placement rules; no current
//     validation reads them
package shipment
