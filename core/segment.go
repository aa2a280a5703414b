package core

import (
	"math"
	"sort"

	"github.com/sailhq/windward/schema"
)

// BuildSegments partitions a track of pointCount points into an ordered,
// alternating sequence of straight and turn segments covering every point.
// Adjacent segments share their boundary point so rendered polylines stay
// connected; the duplication is deliberate.
//
// With zero turns the whole track becomes one straight segment. Callers
// wanting finer granularity in that case should use BearingSegments.
func BuildSegments(pointCount int, turns []schema.TurnEvent) []schema.Segment {
	if pointCount == 0 {
		return []schema.Segment{}
	}
	if len(turns) == 0 {
		return []schema.Segment{{
			Kind:       schema.StraightSegment,
			StartIndex: 0,
			EndIndex:   pointCount - 1,
		}}
	}

	sorted := make([]schema.TurnEvent, len(turns))
	copy(sorted, turns)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].StartIndex < sorted[b].StartIndex
	})

	segments := []schema.Segment{}

	// Leading straight run, ending on the first turn's start point.
	if sorted[0].StartIndex > 0 {
		segments = append(segments, schema.Segment{
			Kind:       schema.StraightSegment,
			StartIndex: 0,
			EndIndex:   sorted[0].StartIndex,
		})
	}

	for i, turn := range sorted {
		segments = append(segments, schema.Segment{
			Kind:         schema.TurnSegment,
			StartIndex:   turn.StartIndex,
			EndIndex:     turn.EndIndex,
			StartCourse:  turn.StartCourse,
			EndCourse:    turn.EndCourse,
			CourseChange: turn.CourseChange,
		})

		// Straight run between this turn and the next, sharing both
		// boundary points. Even when the next turn starts immediately
		// after this one ends, the two-point connector keeps the kinds
		// alternating and the boundary shared.
		if i < len(sorted)-1 {
			next := sorted[i+1]
			if turn.EndIndex < next.StartIndex {
				segments = append(segments, schema.Segment{
					Kind:       schema.StraightSegment,
					StartIndex: turn.EndIndex,
					EndIndex:   next.StartIndex,
				})
			}
		}
	}

	// Trailing straight run, starting on the last turn's end point.
	last := sorted[len(sorted)-1]
	if last.EndIndex < pointCount-1 {
		segments = append(segments, schema.Segment{
			Kind:       schema.StraightSegment,
			StartIndex: last.EndIndex,
			EndIndex:   pointCount - 1,
		})
	}

	return segments
}

// BearingSegments splits a track by bearing drift alone: a new segment
// starts whenever the instantaneous bearing deviates from the bearing of
// the current segment's first leg by more than bearingThreshold degrees.
// All resulting segments are straight; this is the fallback used when turn
// detection finds nothing.
func BearingSegments(points []schema.TrackPoint, bearingThreshold float64) []schema.Segment {
	if len(points) == 0 {
		return []schema.Segment{}
	}
	if len(points) < 2 {
		return []schema.Segment{{
			Kind:       schema.StraightSegment,
			StartIndex: 0,
			EndIndex:   0,
		}}
	}

	segments := []schema.Segment{}
	segStart := 0
	var refBearing float64

	for i := 0; i < len(points)-1; i++ {
		bearing := Bearing(points[i].Lat, points[i].Lon, points[i+1].Lat, points[i+1].Lon)

		// The segment's reference bearing is its first leg's bearing.
		if i == segStart {
			refBearing = bearing
		}

		if math.Abs(AngleDiff(bearing, refBearing)) > bearingThreshold {
			segments = append(segments, schema.Segment{
				Kind:       schema.StraightSegment,
				StartIndex: segStart,
				EndIndex:   i,
			})
			segStart = i + 1
		}
	}

	segments = append(segments, schema.Segment{
		Kind:       schema.StraightSegment,
		StartIndex: segStart,
		EndIndex:   len(points) - 1,
	})

	return segments
}
