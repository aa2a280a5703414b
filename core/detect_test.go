package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailhq/windward/schema"
)

// TestDetectTurnsTwoPhase tests the default two-phase scan.
func TestDetectTurnsTwoPhase(t *testing.T) {
	cfg := testConfig()

	t.Run("single tack detected", func(t *testing.T) {
		points := makeTrack(repeatHeadings([2]float64{45, 10}, [2]float64{135, 10}), 5, time.Second)
		courses := BuildCourses(points)

		turns := DetectTurns(cfg, points, courses)
		require.Len(t, turns, 1)

		turn := turns[0]
		assert.Less(t, turn.StartIndex, turn.EndIndex)
		assert.InDelta(t, 45, turn.StartCourse, 1)
		assert.InDelta(t, 135, turn.EndCourse, 1)
		assert.InDelta(t, 90, turn.CourseChange, 1)
		assert.GreaterOrEqual(t, turn.Duration, 0.0)
		assert.Equal(t, points[turn.StartIndex].Time, turn.StartTime)
		assert.Equal(t, points[turn.EndIndex].Time, turn.EndTime)
	})

	t.Run("two tacks do not overlap", func(t *testing.T) {
		headings := repeatHeadings([2]float64{45, 8}, [2]float64{135, 8}, [2]float64{45, 8})
		points := makeTrack(headings, 5, time.Second)
		courses := BuildCourses(points)

		turns := DetectTurns(cfg, points, courses)
		require.Len(t, turns, 2)
		assert.Greater(t, turns[1].StartIndex, turns[0].EndIndex)
	})

	t.Run("gentle curve is not a turn", func(t *testing.T) {
		// 10 degrees per leg never exceeds half the 60 degree threshold.
		headings := []float64{40, 50, 60, 70, 80, 90, 100, 110}
		points := makeTrack(headings, 5, time.Second)
		courses := BuildCourses(points)

		assert.Empty(t, DetectTurns(cfg, points, courses))
	})

	t.Run("slow turn exceeds the time budget", func(t *testing.T) {
		// Points 10s apart: the course never stabilizes within 15s.
		points := makeTrack(repeatHeadings([2]float64{45, 10}, [2]float64{135, 10}), 50, 10*time.Second)
		courses := BuildCourses(points)

		assert.Empty(t, DetectTurns(cfg, points, courses))
	})

	t.Run("too few points", func(t *testing.T) {
		points := makeTrack([]float64{45}, 5, time.Second)
		courses := BuildCourses(points)
		assert.Empty(t, DetectTurns(cfg, points, courses))
	})
}

// TestDetectTurnsSinglePhase tests the alternate scan and its end-index
// convention: the stored end index is the stabilization course index plus
// one, so it lands one point later than the raw course index.
func TestDetectTurnsSinglePhase(t *testing.T) {
	cfg := testConfig()
	cfg.Detector = schema.SinglePhaseDetector

	t.Run("single tack detected", func(t *testing.T) {
		points := makeTrack(repeatHeadings([2]float64{45, 10}, [2]float64{135, 10}), 5, time.Second)
		courses := BuildCourses(points)

		turns := DetectTurns(cfg, points, courses)
		require.Len(t, turns, 1)

		turn := turns[0]
		assert.Less(t, turn.StartIndex, turn.EndIndex)
		assert.InDelta(t, 45, turn.StartCourse, 1)
		assert.InDelta(t, 135, turn.EndCourse, 1)
		assert.GreaterOrEqual(t, turn.CourseChange, cfg.AngleThreshold)
	})

	t.Run("starts earlier than two-phase", func(t *testing.T) {
		// The sixth-of-threshold entry catches the leg before the change,
		// while the two-phase scan enters on the changed leg itself.
		points := makeTrack(repeatHeadings([2]float64{45, 10}, [2]float64{135, 10}), 5, time.Second)
		courses := BuildCourses(points)

		single := detectTurnsSinglePhase(points, courses, cfg.AngleThreshold, cfg.TimeThreshold)
		two := detectTurnsTwoPhase(points, courses, cfg.AngleThreshold, cfg.TimeThreshold)
		require.Len(t, single, 1)
		require.Len(t, two, 1)
		assert.Equal(t, two[0].StartIndex-1, single[0].StartIndex)
	})

	t.Run("no event without stabilization inside the budget", func(t *testing.T) {
		points := makeTrack(repeatHeadings([2]float64{45, 10}, [2]float64{135, 10}), 50, 10*time.Second)
		courses := BuildCourses(points)

		assert.Empty(t, DetectTurns(cfg, points, courses))
	})

	t.Run("consecutive tacks", func(t *testing.T) {
		headings := repeatHeadings([2]float64{45, 8}, [2]float64{135, 8}, [2]float64{45, 8})
		points := makeTrack(headings, 5, time.Second)
		courses := BuildCourses(points)

		turns := DetectTurns(cfg, points, courses)
		require.Len(t, turns, 2)
		assert.Greater(t, turns[1].StartIndex, turns[0].EndIndex)
	})
}
