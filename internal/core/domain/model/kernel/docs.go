// Package kernel provides core domain primitives used throughout the domain
// model.
//
// The package includes:
//   - GeoPoint: an immutable value object for geographic coordinates with
//     great-circle distance calculation
//
// These primitives are immutable and safe for concurrent use. Zero values are
// invalid and detected via the constructor guard, so domain objects built on
// them are always in a known state.
package kernel
