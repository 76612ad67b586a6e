package utils

import "math"

const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance in kilometers between two
// latitude/longitude pairs given in degrees.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	rLat1 := radians(lat1)
	rLat2 := radians(lat2)

	cosine := math.Cos(rLat1)*math.Cos(rLat2)*math.Cos(radians(lng2)-radians(lng1)) +
		math.Sin(rLat1)*math.Sin(rLat2)

	// Float rounding can push the value a hair outside acos's domain.
	cosine = math.Min(1, math.Max(-1, cosine))

	return earthRadiusKm * math.Acos(cosine)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
