package impl

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusMiles is the mean Earth radius used for distance calculations.
const earthRadiusMiles = 3959.0

// haversineMiles returns the great-circle distance between two points in
// miles. Points are orb lon/lat order.
func haversineMiles(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(h))
}
