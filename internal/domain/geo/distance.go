// Package geo provides the pure great-circle math used by the breach evaluator.
// Points follow the orb convention: index 0 is longitude, index 1 is latitude.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const earthRadiusM = 6371000.0

// Distance calculates the great-circle distance between two points in meters
// using the Haversine formula.
func Distance(p1, p2 orb.Point) float64 {
	lat1Rad := p1[1] * math.Pi / 180
	lng1Rad := p1[0] * math.Pi / 180
	lat2Rad := p2[1] * math.Pi / 180
	lng2Rad := p2[0] * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// IsInside reports whether point lies within (or exactly on) the circle of the
// given radius around center. The boundary is inclusive: a point at distance
// exactly radiusMeters counts as inside.
func IsInside(point, center orb.Point, radiusMeters float64) bool {
	return Distance(point, center) <= radiusMeters
}
