// Package core has core logic for course analysis, wind inference and
// track segmentation.
package core

import "math"

// earthRadiusMeters is the mean Earth radius used by the Haversine formula.
const earthRadiusMeters = 6371000.0

// Distance returns the great-circle distance in meters between two
// coordinates, computed with the Haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlon1 := lon1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlon2 := lon2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1
	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Asin(math.Sqrt(a))
	return c * earthRadiusMeters
}

// Bearing returns the initial bearing in degrees [0,360) from the first
// coordinate to the second, using the forward azimuth formula. For two
// identical coordinates the bearing is undefined; this implementation
// returns 0 rather than failing.
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlon1 := lon1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlon2 := lon2 * math.Pi / 180

	dlon := rlon2 - rlon1
	y := math.Sin(dlon) * math.Cos(rlat2)
	x := math.Cos(rlat1)*math.Sin(rlat2) - math.Sin(rlat1)*math.Cos(rlat2)*math.Cos(dlon)
	return NormalizeDegrees(math.Atan2(y, x) * 180 / math.Pi)
}

// NormalizeDegrees maps an angle into [0,360).
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// AngleDiff returns the signed circular difference b-a normalized into
// (-180,180]. The sign indicates the shortest rotation direction from a
// to b; AngleDiff(a,a) is always 0.
func AngleDiff(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// IsSimilarBearing reports whether two bearings are within threshold
// degrees of each other across the 0/360 boundary.
func IsSimilarBearing(a, b, threshold float64) bool {
	return math.Abs(AngleDiff(a, b)) <= threshold
}

// CircularMean returns the mean of a set of angles in degrees, computed
// from the resultant of their unit vectors and normalized into [0,360).
// An arithmetic mean is wrong near the 0/360 boundary: the mean of 10 and
// 350 must be 0, not 180. Returns 0 for an empty input.
func CircularMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sumSin, sumCos float64
	for _, v := range values {
		r := v * math.Pi / 180
		sumSin += math.Sin(r)
		sumCos += math.Cos(r)
	}
	return NormalizeDegrees(math.Atan2(sumSin, sumCos) * 180 / math.Pi)
}

// CircularMedian returns the input angle minimizing the total absolute
// circular deviation to all other inputs, normalized into [0,360).
// Ties resolve to the earliest such angle so the result is deterministic.
// Returns 0 for an empty input.
func CircularMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	best := values[0]
	bestSum := math.Inf(1)
	for _, candidate := range values {
		var sum float64
		for _, v := range values {
			sum += math.Abs(AngleDiff(candidate, v))
		}
		if sum < bestSum {
			bestSum = sum
			best = candidate
		}
	}
	return NormalizeDegrees(best)
}
