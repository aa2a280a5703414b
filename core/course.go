package core

import "github.com/sailhq/windward/schema"

// BuildCourses derives a per-point instantaneous course from a trackpoint
// sequence. courses[i] is the bearing from point i to point i+1; the final
// entry duplicates the previous one so the slice length matches the point
// count. A single-point track produces one degenerate course of 0.
func BuildCourses(points []schema.TrackPoint) []float64 {
	if len(points) == 0 {
		return []float64{}
	}

	courses := make([]float64, 0, len(points))
	for i := 0; i < len(points)-1; i++ {
		courses = append(courses, Bearing(points[i].Lat, points[i].Lon, points[i+1].Lat, points[i+1].Lon))
	}

	// Duplicate the last course to match the number of trackpoints.
	if len(courses) > 0 {
		courses = append(courses, courses[len(courses)-1])
	} else {
		courses = append(courses, 0)
	}
	return courses
}

// SmoothCourses applies a circular moving average of the given window size
// over a course sequence. Indices without a full symmetric window get the
// nearest edge value verbatim: courses[0] at the leading edge and the last
// course at the trailing edge. Partial-window averaging at the edges would
// change segment boundaries against existing recorded tracks, so the
// passthrough must stay.
func SmoothCourses(courses []float64, windowSize int) []float64 {
	n := len(courses)
	if n == 0 {
		return []float64{}
	}
	half := windowSize / 2

	smoothed := make([]float64, 0, n)
	for i := 0; i < half && len(smoothed) < n; i++ {
		smoothed = append(smoothed, courses[0])
	}
	for i := half; i < n-half; i++ {
		smoothed = append(smoothed, CircularMean(courses[i-half:i+half+1]))
	}
	for len(smoothed) < n {
		smoothed = append(smoothed, courses[n-1])
	}
	return smoothed
}
