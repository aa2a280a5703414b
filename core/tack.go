package core

import "github.com/sailhq/windward/schema"

// ClassifyTack labels a single course relative to the wind. The wind
// striking the left side of the boat means port tack: a relative angle
// below 180 puts the wind on the port side.
func ClassifyTack(wind, course float64) schema.Tack {
	relative := NormalizeDegrees(wind - course)
	if relative < 180 {
		return schema.PortTack
	}
	return schema.StarboardTack
}

// ClassifyTacks assigns a tack label to every point from its smoothed
// course. An unknown wind direction yields all-unknown labels.
func ClassifyTacks(wind schema.WindEstimate, smoothedCourses []float64) []schema.Tack {
	tacks := make([]schema.Tack, len(smoothedCourses))
	if !wind.Known {
		for i := range tacks {
			tacks[i] = schema.UnknownTack
		}
		return tacks
	}
	for i, course := range smoothedCourses {
		tacks[i] = ClassifyTack(wind.Direction, course)
	}
	return tacks
}
