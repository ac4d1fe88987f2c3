package location

import "math"

const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance in kilometers between two
// points given in decimal degrees.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Nearest returns the pool candidate closest to the target point. The
// first-seen candidate wins on an exact distance tie. ok is false when the
// pool is empty.
func Nearest(lat, lon float64, pool []Candidate) (best Candidate, ok bool) {
	if len(pool) == 0 {
		return Candidate{}, false
	}

	best = pool[0]
	bestDist := HaversineKm(lat, lon, best.Latitude, best.Longitude)

	for _, c := range pool[1:] {
		if d := HaversineKm(lat, lon, c.Latitude, c.Longitude); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, true
}
