package game

import (
	"fmt"
	"math"
)

// UnknownCountry is the classification for points no heuristic can place.
const UnknownCountry = "Unknown"

// Country is a classifier result.
type Country struct {
	Code string
	Name string
}

// Classify maps a coordinate pair to a country using the static bounding-box
// table, falling back to the nearest box for open water. It never reports
// "no match": ocean points are attributed to the nearest coastline's country,
// a deliberate simplification.
func Classify(lat, lon float64) Country {
	for _, box := range countryBoxes {
		if lat >= box.MinLat && lat <= box.MaxLat && lon >= box.MinLon && lon <= box.MaxLon {
			return Country{Code: box.Code, Name: box.Name}
		}
	}
	return nearestCountry(lat, lon)
}

// ClassifyCode is Classify reduced to the 2-letter code.
func ClassifyCode(lat, lon float64) string {
	return Classify(lat, lon).Code
}

// nearestCountry returns the box with the smallest clamped-Euclidean distance
// to the point. Degree-space distance is deliberately crude; it only needs to
// rank boxes.
func nearestCountry(lat, lon float64) Country {
	minDist := math.Inf(1)
	nearest := Country{Name: UnknownCountry}
	for _, box := range countryBoxes {
		closestLat := math.Max(box.MinLat, math.Min(lat, box.MaxLat))
		closestLon := math.Max(box.MinLon, math.Min(lon, box.MaxLon))
		d := math.Hypot(lat-closestLat, lon-closestLon)
		if d < minDist {
			minDist = d
			nearest = Country{Code: box.Code, Name: box.Name}
		}
	}
	return nearest
}

// LocationKey quantizes a coordinate pair to the fixed-precision grid key that
// identifies a target. Non-finite input yields the empty key.
func LocationKey(lat, lon float64) string {
	if !isFinite(lat) || !isFinite(lon) {
		return ""
	}
	return fmt.Sprintf("%.*f,%.*f", LocationKeyPrecision, lat, LocationKeyPrecision, lon)
}

// HaversineKm is the great-circle distance between two coordinates.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
