package core

import (
	"math"

	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/internal/units"
	"github.com/sailhq/windward/schema"
)

// RelativeWindAngle returns the angle in [0,180] between a course and the
// dead-downwind direction for a wind in the "coming from" convention. 0
// means sailing straight downwind, 180 straight upwind.
func RelativeWindAngle(bearing, windDirection float64) float64 {
	return math.Abs(NormalizeDegrees(bearing-windDirection) - 180)
}

// PointOfSailFor buckets a relative wind angle into a point of sail.
// Boundaries are half-open: exactly 35 is already Close Reach, exactly 135
// is already Run.
func PointOfSailFor(windAngle float64) schema.PointOfSail {
	switch {
	case windAngle < 35:
		return schema.CloseHauled
	case windAngle < 80:
		return schema.CloseReach
	case windAngle < 100:
		return schema.BeamReach
	case windAngle < 135:
		return schema.BroadReach
	default:
		return schema.Run
	}
}

// PathDistance sums the consecutive great-circle distances along a run of
// trackpoints, in meters.
func PathDistance(points []schema.TrackPoint) float64 {
	total := 0.0
	for i := 0; i < len(points)-1; i++ {
		total += Distance(points[i].Lat, points[i].Lon, points[i+1].Lat, points[i+1].Lon)
	}
	return total
}

// ComputeSegmentMetrics derives per-segment metrics from a segment
// partition. Segments with fewer than 2 points carry no measurable travel
// and are excluded, not treated as errors; Index still refers to the
// segment's position in the input partition.
//
// Wind-dependent fields are populated only when the wind estimate is known.
func ComputeSegmentMetrics(cfg *contract.Config, points []schema.TrackPoint, segments []schema.Segment, wind schema.WindEstimate, tacks []schema.Tack) []schema.SegmentMetrics {
	metrics := make([]schema.SegmentMetrics, 0, len(segments))

	for i, seg := range segments {
		if seg.PointCount() < 2 {
			continue
		}

		segPoints := points[seg.StartIndex : seg.EndIndex+1]
		first := segPoints[0]
		last := segPoints[len(segPoints)-1]

		// Straight-line bearing from first to last point, not an average
		// of the per-leg bearings.
		overallBearing := Bearing(first.Lat, first.Lon, last.Lat, last.Lon)
		distance := PathDistance(segPoints)
		duration := last.Time.Sub(first.Time).Seconds()

		avgSpeed := 0.0
		if duration > 0 {
			avgSpeed = distance / duration
		}

		m := schema.SegmentMetrics{
			Index:         i,
			Kind:          seg.Kind,
			NumPoints:     len(segPoints),
			StartTime:     first.Time,
			EndTime:       last.Time,
			Duration:      duration,
			Distance:      distance,
			AvgSpeedMps:   avgSpeed,
			AvgSpeedKnots: units.MpsToKnots(avgSpeed),
			Bearing:       overallBearing,
		}

		if wind.Known {
			m.DominantTack = dominantTack(tacks[seg.StartIndex : seg.EndIndex+1])
			m.RelativeWindAngle = RelativeWindAngle(overallBearing, wind.Direction)
			if seg.Kind == schema.TurnSegment && cfg.LabelTurns {
				m.PointOfSail = schema.Turning
			} else {
				m.PointOfSail = PointOfSailFor(m.RelativeWindAngle)
			}
		}

		metrics = append(metrics, m)
	}

	return metrics
}

// dominantTack picks the majority tack over a run of labels, or mixed on a
// tie.
func dominantTack(tacks []schema.Tack) schema.Tack {
	port, starboard := 0, 0
	for _, t := range tacks {
		switch t {
		case schema.PortTack:
			port++
		case schema.StarboardTack:
			starboard++
		}
	}
	switch {
	case port > starboard:
		return schema.PortTack
	case starboard > port:
		return schema.StarboardTack
	default:
		return schema.MixedTack
	}
}
