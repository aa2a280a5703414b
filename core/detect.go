package core

import (
	"math"
	"time"

	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/schema"
)

// stableCourseDelta is the consecutive-course change, in degrees, below
// which a course is considered to have stabilized after a turn.
const stableCourseDelta = 5.0

// DetectTurns scans a course sequence for turn events using the configured
// strategy. courses must be the raw (unsmoothed) per-point course sequence
// from BuildCourses. Both strategies share the same contract: a turn is a
// large, sustained, time-bounded course change followed by stabilization.
// They differ in entry sensitivity and end-index convention, so results are
// not interchangeable across strategies.
func DetectTurns(cfg *contract.Config, points []schema.TrackPoint, courses []float64) []schema.TurnEvent {
	if cfg.Detector == schema.SinglePhaseDetector {
		return detectTurnsSinglePhase(points, courses, cfg.AngleThreshold, cfg.TimeThreshold)
	}
	return detectTurnsTwoPhase(points, courses, cfg.AngleThreshold, cfg.TimeThreshold)
}

// detectTurnsTwoPhase flags candidate starts in a first pass, then scans
// forward from each candidate tracking the maximum course change from the
// pre-turn course. A candidate becomes an event only when that maximum
// exceeds angleThreshold and the course stabilized before the time budget
// ran out. Candidates swallowed by an accepted event are skipped so events
// never overlap (earliest start wins).
func detectTurnsTwoPhase(points []schema.TrackPoint, courses []float64, angleThreshold float64, timeThreshold time.Duration) []schema.TurnEvent {
	turns := []schema.TurnEvent{}
	if len(points) < 3 {
		return turns
	}

	// Pass 1: indices where the course starts changing significantly.
	// Half the threshold catches the beginning of a change.
	potentialStarts := []int{}
	for i := 1; i < len(points)-1; i++ {
		if math.Abs(AngleDiff(courses[i-1], courses[i])) > angleThreshold/2 {
			potentialStarts = append(potentialStarts, i)
		}
	}

	// Pass 2: expand each candidate into a full turn window.
	budget := timeThreshold.Seconds()
	i := 0
	for i < len(potentialStarts) {
		startIdx := potentialStarts[i]
		startTime := points[startIdx].Time
		startCourse := courses[startIdx-1] // Course before the change

		endIdx := startIdx
		maxChange := 0.0
		stabilized := false
		var stabilizedCourse float64

		for j := startIdx + 1; j < len(points); j++ {
			if points[j].Time.Sub(startTime).Seconds() > budget {
				break
			}

			change := math.Abs(AngleDiff(startCourse, courses[j]))
			if change > maxChange {
				maxChange = change
				endIdx = j
			}

			// Past the first lookahead step, a small consecutive change
			// means the new course has settled.
			if j > startIdx+1 && math.Abs(AngleDiff(courses[j-1], courses[j])) < stableCourseDelta {
				stabilized = true
				stabilizedCourse = courses[j]
				break
			}
		}

		if maxChange > angleThreshold && stabilized {
			endTime := points[endIdx].Time
			turns = append(turns, schema.TurnEvent{
				StartIndex:   startIdx,
				EndIndex:     endIdx,
				StartCourse:  startCourse,
				EndCourse:    stabilizedCourse,
				CourseChange: maxChange,
				StartTime:    startTime,
				EndTime:      endTime,
				Duration:     endTime.Sub(startTime).Seconds(),
			})

			// Skip candidates consumed by this event.
			for i < len(potentialStarts) && potentialStarts[i] <= endIdx {
				i++
			}
		} else {
			i++
		}
	}

	return turns
}

// detectTurnsSinglePhase walks the course sequence once with a looser entry
// threshold (a sixth of angleThreshold). An event ends only when the course
// stabilizes with at least angleThreshold of cumulative change before the
// time budget expires; otherwise the candidate start emits nothing.
//
// The stored end index is the stabilization course index plus one, because
// courses[j] describes the interval between points j and j+1: the boat has
// finished turning at the later point of that interval.
func detectTurnsSinglePhase(points []schema.TrackPoint, courses []float64, angleThreshold float64, timeThreshold time.Duration) []schema.TurnEvent {
	turns := []schema.TurnEvent{}
	if len(points) < 3 {
		return turns
	}

	// The final course entry duplicates its predecessor and carries no new
	// information, so the scan stops one interval short of it.
	rawCount := len(points) - 1
	budget := timeThreshold.Seconds()

	i := 0
	for i < rawCount-1 {
		if math.Abs(AngleDiff(courses[i], courses[i+1])) <= angleThreshold/6 {
			i++
			continue
		}

		startIdx := i
		startCourse := courses[i]
		cumulative := 0.0
		endCourseIdx := -1

		for j := i + 1; j < rawCount; j++ {
			cumulative = math.Max(cumulative, math.Abs(AngleDiff(startCourse, courses[j])))

			if points[j+1].Time.Sub(points[startIdx].Time).Seconds() > budget {
				break
			}

			if j > i+1 && math.Abs(AngleDiff(courses[j-1], courses[j])) < stableCourseDelta {
				if cumulative >= angleThreshold {
					endCourseIdx = j
					break
				}
			}
		}

		if endCourseIdx < 0 {
			i++
			continue
		}

		endIdx := endCourseIdx + 1
		startTime := points[startIdx].Time
		endTime := points[endIdx].Time
		turns = append(turns, schema.TurnEvent{
			StartIndex:   startIdx,
			EndIndex:     endIdx,
			StartCourse:  startCourse,
			EndCourse:    courses[endCourseIdx],
			CourseChange: cumulative,
			StartTime:    startTime,
			EndTime:      endTime,
			Duration:     endTime.Sub(startTime).Seconds(),
		})
		i = endCourseIdx + 1
	}

	return turns
}
