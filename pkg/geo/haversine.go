package geo

import "math"

// EarthRadiusMiles is the Earth radius in statute miles for Haversine.
const EarthRadiusMiles = 3958.8

// MilesPerDegreeLat is the approximate north-south extent of one degree of
// latitude, used for radius ring sizing on the flat map.
const MilesPerDegreeLat = EarthRadiusMiles * math.Pi / 180

// DistanceMiles returns the great-circle distance in miles between two
// points (lat/lon in degrees).
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	φ1, φ2 := rad(lat1), rad(lat2)
	Δφ := rad(lat2 - lat1)
	Δλ := rad(lon2 - lon1)
	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMiles * c
}
