package kernel

import (
	"errors"
	"fmt"
	"math"

	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position captured from a device.
// It is an immutable value object. The meaningful domain is latitude in
// [-90, 90] and longitude in [-180, 180]; values outside that domain are not
// rejected; distance results for them are mathematically defined but
// geographically meaningless. The zero value of GeoPoint is invalid; use the
// constructor.
//
// Example:
//
//	shop := kernel.NewGeoPoint(17.547264, 78.2270464)
//	customer := kernel.NewGeoPoint(17.55, 78.23)
//	km, err := shop.DistanceKmTo(customer)
type GeoPoint struct {
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in decimal
// degrees. Coordinates are accepted as-is; see the GeoPoint type documentation
// for the meaningful domain.
func NewGeoPoint(latitude float64, longitude float64) GeoPoint {
	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate checks that the GeoPoint was created via its constructor.
// Returns ErrGeoPointIsNotConstructed for zero-value instances.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String returns a representation in the format "GeoPoint(lat,lon)".
// It implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.latitude, p.longitude)
}

// IsEqual compares two points for coordinate equality. Both points must be
// properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceKmTo calculates the great-circle distance in kilometers between two
// points using the haversine formula with EarthRadiusKm as the sphere radius.
// The result is symmetric: p.DistanceKmTo(q) == q.DistanceKmTo(p), and the
// distance from a point to itself is zero. Both points must be properly
// constructed for the calculation to succeed.
//
// Example:
//
//	shop := kernel.NewGeoPoint(17.547264, 78.2270464)
//	km, err := shop.DistanceKmTo(kernel.NewGeoPoint(17.6, 78.3))
func (p GeoPoint) DistanceKmTo(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := radians(other.latitude - p.latitude)
	dLon := radians(other.longitude - p.longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(p.latitude))*math.Cos(radians(other.latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h)), nil
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
