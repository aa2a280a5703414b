package core

import (
	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/schema"
)

// Analyze runs the full pipeline over a trackpoint sequence:
//
//	points -> courses -> smoothed courses -> turn events -> wind estimate
//	       -> tack labels -> segments -> segment metrics
//
// The course sequence is computed once and threaded through every stage.
// Each stage builds fresh collections from immutable inputs, so the result
// is deterministic for a given point sequence and configuration. Degenerate
// inputs (zero or one point) flow through as empty or trivial results.
func Analyze(cfg *contract.Config, points []schema.TrackPoint) *schema.AnalysisResult {
	courses := BuildCourses(points)
	smoothed := SmoothCourses(courses, cfg.WindowSize)

	turns := DetectTurns(cfg, points, courses)
	wind := EstimateWind(cfg, points, smoothed, turns)
	tacks := ClassifyTacks(wind, smoothed)

	// Without any detected turns the alternating partition degenerates to
	// one segment; bearing-based splitting recovers some structure.
	var segments []schema.Segment
	if len(turns) == 0 {
		segments = BearingSegments(points, cfg.BearingThreshold)
	} else {
		segments = BuildSegments(len(points), turns)
	}

	metrics := ComputeSegmentMetrics(cfg, points, segments, wind, tacks)

	return &schema.AnalysisResult{
		Points:          points,
		Courses:         courses,
		SmoothedCourses: smoothed,
		Turns:           turns,
		Wind:            wind,
		Tacks:           tacks,
		Segments:        segments,
		Metrics:         metrics,
	}
}
