package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailhq/windward/schema"
)

// TestRelativeWindAngle tests the course-to-wind angle in [0,180].
func TestRelativeWindAngle(t *testing.T) {
	tests := []struct {
		name     string
		bearing  float64
		wind     float64
		expected float64
	}{
		{name: "forty five off the wind", bearing: 45, wind: 90, expected: 135},
		{name: "dead upwind", bearing: 90, wind: 90, expected: 180},
		{name: "dead downwind", bearing: 270, wind: 90, expected: 0},
		{name: "beam", bearing: 0, wind: 90, expected: 90},
		{name: "across the boundary", bearing: 10, wind: 350, expected: 160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeWindAngle(tt.bearing, tt.wind)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 180.0)
		})
	}
}

// TestPointOfSailFor pins the exact bucket boundaries.
func TestPointOfSailFor(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected schema.PointOfSail
	}{
		{name: "zero", angle: 0, expected: schema.CloseHauled},
		{name: "just under close hauled limit", angle: 34.9, expected: schema.CloseHauled},
		{name: "exactly 35 is close reach", angle: 35, expected: schema.CloseReach},
		{name: "exactly 80 is beam reach", angle: 80, expected: schema.BeamReach},
		{name: "exactly 100 is broad reach", angle: 100, expected: schema.BroadReach},
		{name: "exactly 135 is run", angle: 135, expected: schema.Run},
		{name: "exactly 180 is run", angle: 180, expected: schema.Run},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PointOfSailFor(tt.angle))
		})
	}
}

// TestComputeSegmentMetrics tests per-segment aggregation.
func TestComputeSegmentMetrics(t *testing.T) {
	cfg := testConfig()
	wind := schema.WindEstimate{Direction: 90, Known: true}

	t.Run("distance duration and speed", func(t *testing.T) {
		points := makeTrack(repeatHeadings([2]float64{45, 10}), 50, 10*time.Second)
		segments := []schema.Segment{{Kind: schema.StraightSegment, StartIndex: 0, EndIndex: len(points) - 1}}
		tacks := ClassifyTacks(wind, constantCourses(45, len(points)))

		metrics := ComputeSegmentMetrics(cfg, points, segments, wind, tacks)
		require.Len(t, metrics, 1)

		m := metrics[0]
		assert.Equal(t, 0, m.Index)
		assert.Equal(t, len(points), m.NumPoints)
		assert.InDelta(t, 500, m.Distance, 1)
		assert.InDelta(t, 100, m.Duration, 1e-9)
		assert.InDelta(t, 5, m.AvgSpeedMps, 0.05)
		assert.InDelta(t, 9.72, m.AvgSpeedKnots, 0.1)
		assert.InDelta(t, 45, m.Bearing, 0.5)
		assert.Equal(t, schema.PortTack, m.DominantTack)
		assert.InDelta(t, 135, m.RelativeWindAngle, 0.5)
		assert.Equal(t, schema.BroadReach, m.PointOfSail)
	})

	t.Run("non-positive duration means zero speed", func(t *testing.T) {
		points := makeTrack(repeatHeadings([2]float64{45, 3}), 50, 10*time.Second)
		for i := range points {
			points[i].Time = points[0].Time // Collapse all timestamps
		}
		segments := []schema.Segment{{Kind: schema.StraightSegment, StartIndex: 0, EndIndex: 3}}
		tacks := ClassifyTacks(wind, constantCourses(45, len(points)))

		metrics := ComputeSegmentMetrics(cfg, points, segments, wind, tacks)
		require.Len(t, metrics, 1)
		assert.Zero(t, metrics[0].AvgSpeedMps)
		assert.Zero(t, metrics[0].AvgSpeedKnots)
	})

	t.Run("short segments are dropped", func(t *testing.T) {
		points := makeTrack(repeatHeadings([2]float64{45, 5}), 50, 10*time.Second)
		segments := []schema.Segment{
			{Kind: schema.StraightSegment, StartIndex: 0, EndIndex: 0},
			{Kind: schema.StraightSegment, StartIndex: 0, EndIndex: 5},
		}
		tacks := ClassifyTacks(wind, constantCourses(45, len(points)))

		metrics := ComputeSegmentMetrics(cfg, points, segments, wind, tacks)
		require.Len(t, metrics, 1)
		// Index refers to the position in the input partition.
		assert.Equal(t, 1, metrics[0].Index)
	})

	t.Run("turn segments labeled Turning when configured", func(t *testing.T) {
		points := makeTrack(repeatHeadings([2]float64{45, 5}), 50, 10*time.Second)
		segments := []schema.Segment{{Kind: schema.TurnSegment, StartIndex: 0, EndIndex: 5, CourseChange: 90}}
		tacks := ClassifyTacks(wind, constantCourses(45, len(points)))

		metrics := ComputeSegmentMetrics(cfg, points, segments, wind, tacks)
		require.Len(t, metrics, 1)
		assert.Equal(t, schema.Turning, metrics[0].PointOfSail)

		plainCfg := testConfig()
		plainCfg.LabelTurns = false
		metrics = ComputeSegmentMetrics(plainCfg, points, segments, wind, tacks)
		require.Len(t, metrics, 1)
		assert.Equal(t, schema.BroadReach, metrics[0].PointOfSail)
	})

	t.Run("unknown wind leaves wind fields empty", func(t *testing.T) {
		points := makeTrack(repeatHeadings([2]float64{45, 5}), 50, 10*time.Second)
		segments := []schema.Segment{{Kind: schema.StraightSegment, StartIndex: 0, EndIndex: 5}}
		tacks := ClassifyTacks(schema.WindEstimate{}, constantCourses(45, len(points)))

		metrics := ComputeSegmentMetrics(cfg, points, segments, schema.WindEstimate{}, tacks)
		require.Len(t, metrics, 1)
		assert.Empty(t, metrics[0].DominantTack)
		assert.Empty(t, metrics[0].PointOfSail)
		assert.Zero(t, metrics[0].RelativeWindAngle)
	})
}

// TestDominantTack tests majority voting with the mixed tie case.
func TestDominantTack(t *testing.T) {
	port, starboard := schema.PortTack, schema.StarboardTack
	assert.Equal(t, port, dominantTack([]schema.Tack{port, port, starboard}))
	assert.Equal(t, starboard, dominantTack([]schema.Tack{port, starboard, starboard}))
	assert.Equal(t, schema.MixedTack, dominantTack([]schema.Tack{port, starboard}))
	assert.Equal(t, schema.MixedTack, dominantTack(nil))
}
