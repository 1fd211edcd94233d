// Package kernel provides the shared value objects of the packing domain.
//
// The package includes:
//   - UUID: identifier of episodes, wrapping github.com/google/uuid
//   - Position: a point in the container plane with the vector arithmetic used
//     for center-of-gravity computation (Add, Mul, Div)
//
// Values in this package are immutable and safe to share between goroutines.
package kernel
