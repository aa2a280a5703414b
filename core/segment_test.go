package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailhq/windward/schema"
)

// turnAt builds a minimal turn event spanning the given point indices.
func turnAt(start, end int) schema.TurnEvent {
	return schema.TurnEvent{StartIndex: start, EndIndex: end, CourseChange: 90}
}

// assertPartition checks the segmenter contract: full coverage of
// [0, n-1], shared boundary points, and alternating segment kinds.
func assertPartition(t *testing.T, segments []schema.Segment, n int) {
	t.Helper()
	require.NotEmpty(t, segments)
	assert.Equal(t, 0, segments[0].StartIndex)
	assert.Equal(t, n-1, segments[len(segments)-1].EndIndex)

	for i := 1; i < len(segments); i++ {
		assert.Equal(t, segments[i-1].EndIndex, segments[i].StartIndex,
			"segments %d and %d must share their boundary point", i-1, i)
		assert.NotEqual(t, segments[i-1].Kind, segments[i].Kind,
			"segments %d and %d must alternate kinds", i-1, i)
	}
}

// TestBuildSegments tests the alternating straight/turn partition.
func TestBuildSegments(t *testing.T) {
	t.Run("no turns yields one straight segment", func(t *testing.T) {
		segments := BuildSegments(20, nil)
		require.Len(t, segments, 1)
		assert.Equal(t, schema.StraightSegment, segments[0].Kind)
		assert.Equal(t, 0, segments[0].StartIndex)
		assert.Equal(t, 19, segments[0].EndIndex)
	})

	t.Run("turns in the middle", func(t *testing.T) {
		turns := []schema.TurnEvent{turnAt(5, 8), turnAt(15, 20)}
		segments := BuildSegments(30, turns)

		require.Len(t, segments, 5)
		assertPartition(t, segments, 30)

		assert.Equal(t, schema.StraightSegment, segments[0].Kind)
		assert.Equal(t, schema.TurnSegment, segments[1].Kind)
		assert.Equal(t, 5, segments[1].StartIndex)
		assert.Equal(t, 8, segments[1].EndIndex)
		assert.Equal(t, schema.StraightSegment, segments[2].Kind)
		assert.Equal(t, 8, segments[2].StartIndex)
		assert.Equal(t, 15, segments[2].EndIndex)
	})

	t.Run("turn at the very start", func(t *testing.T) {
		segments := BuildSegments(10, []schema.TurnEvent{turnAt(0, 3)})
		require.Len(t, segments, 2)
		assert.Equal(t, schema.TurnSegment, segments[0].Kind)
		assertPartition(t, segments, 10)
	})

	t.Run("turn at the very end", func(t *testing.T) {
		segments := BuildSegments(10, []schema.TurnEvent{turnAt(6, 9)})
		require.Len(t, segments, 2)
		assert.Equal(t, schema.TurnSegment, segments[1].Kind)
		assertPartition(t, segments, 10)
	})

	t.Run("back-to-back turns get a two-point connector", func(t *testing.T) {
		turns := []schema.TurnEvent{turnAt(2, 5), turnAt(6, 9)}
		segments := BuildSegments(12, turns)

		require.Len(t, segments, 5)
		assertPartition(t, segments, 12)

		assert.Equal(t, schema.StraightSegment, segments[2].Kind)
		assert.Equal(t, 5, segments[2].StartIndex)
		assert.Equal(t, 6, segments[2].EndIndex)
	})

	t.Run("unsorted turns are sorted first", func(t *testing.T) {
		turns := []schema.TurnEvent{turnAt(15, 20), turnAt(5, 8)}
		segments := BuildSegments(30, turns)
		assertPartition(t, segments, 30)
	})

	t.Run("turn metadata is carried over", func(t *testing.T) {
		turn := schema.TurnEvent{StartIndex: 5, EndIndex: 8, StartCourse: 45, EndCourse: 135, CourseChange: 90}
		segments := BuildSegments(20, []schema.TurnEvent{turn})
		require.Len(t, segments, 3)
		assert.InDelta(t, 45, segments[1].StartCourse, 1e-9)
		assert.InDelta(t, 135, segments[1].EndCourse, 1e-9)
		assert.InDelta(t, 90, segments[1].CourseChange, 1e-9)
	})

	t.Run("empty track", func(t *testing.T) {
		assert.Empty(t, BuildSegments(0, nil))
	})
}

// TestBearingSegments tests the fallback bearing-based segmentation.
func TestBearingSegments(t *testing.T) {
	t.Run("constant heading yields one segment", func(t *testing.T) {
		points := makeTrack(repeatHeadings([2]float64{45, 10}), 50, 10*time.Second)
		segments := BearingSegments(points, 20)
		require.Len(t, segments, 1)
		assert.Equal(t, schema.StraightSegment, segments[0].Kind)
		assert.Equal(t, 0, segments[0].StartIndex)
		assert.Equal(t, len(points)-1, segments[0].EndIndex)
	})

	t.Run("course change splits segments", func(t *testing.T) {
		points := makeTrack(repeatHeadings([2]float64{45, 5}, [2]float64{135, 5}), 50, 10*time.Second)
		segments := BearingSegments(points, 20)
		require.Len(t, segments, 2)
		for _, s := range segments {
			assert.Equal(t, schema.StraightSegment, s.Kind)
		}
		assert.Equal(t, 0, segments[0].StartIndex)
		assert.Equal(t, len(points)-1, segments[1].EndIndex)
	})

	t.Run("deviation within threshold stays together", func(t *testing.T) {
		points := makeTrack([]float64{45, 55, 50, 47, 52}, 50, 10*time.Second)
		segments := BearingSegments(points, 20)
		assert.Len(t, segments, 1)
	})

	t.Run("single point", func(t *testing.T) {
		points := makeTrack(nil, 50, 10*time.Second)
		segments := BearingSegments(points, 20)
		require.Len(t, segments, 1)
		assert.Equal(t, 0, segments[0].EndIndex)
	})
}
