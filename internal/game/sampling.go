package game

import (
	"math"
	"math/rand"
)

// RandomSpherePoint samples a uniformly distributed point on the sphere.
// Latitude comes through the arcsine transform so density stays area-correct
// instead of clustering at the poles, then gets clamped to the spawnable
// band.
func RandomSpherePoint(rng *rand.Rand) (lat, lon float64) {
	u := rng.Float64()
	v := rng.Float64()
	lat = math.Asin(2*u-1) * 180 / math.Pi
	lat = Clamp(lat, -MaxSpawnLatitude, MaxSpawnLatitude)
	lon = v*360 - 180
	return lat, lon
}

// RandomPointInBox samples uniformly inside a lat/lon box. Used for seeding.
func RandomPointInBox(rng *rand.Rand, minLat, minLon, maxLat, maxLon float64) (lat, lon float64) {
	lat = minLat + rng.Float64()*(maxLat-minLat)
	lon = minLon + rng.Float64()*(maxLon-minLon)
	return lat, lon
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
