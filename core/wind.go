package core

import (
	"math"
	"sort"

	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/schema"
)

// clusterThreshold is how close, in degrees, a heading must be to a group's
// circular mean to join that group during wind estimation.
const clusterThreshold = 30.0

// EstimateWind derives the true wind direction for a track from its turn
// events, in the meteorological "coming from" convention.
//
// The estimate comes from the tacking pattern: the boundary courses around
// each turn cluster into the two alternating tack headings, whose bisector
// is the tacking axis. When too few turns survive filtering, or the
// headings do not form two distinct groups, the estimate falls back to the
// median sailed course plus 180. A forced direction bypasses everything.
func EstimateWind(cfg *contract.Config, points []schema.TrackPoint, smoothedCourses []float64, turns []schema.TurnEvent) schema.WindEstimate {
	if cfg.ForceWind != nil {
		direction := NormalizeDegrees(*cfg.ForceWind)
		return schema.WindEstimate{
			Direction: direction,
			Known:     true,
			Method:    schema.ForcedMethod,
			Diagnostics: schema.WindDiagnostics{
				ForcedDirection: &direction,
			},
		}
	}

	// Not enough points to smooth a full window: a defined "insufficient
	// data" result, not an error.
	if len(points) < cfg.WindowSize+1 {
		return schema.WindEstimate{}
	}

	diag := schema.WindDiagnostics{}
	for _, t := range turns {
		diag.PotentialTurns = append(diag.PotentialTurns, t.StartIndex)
	}

	// Short turns are usually noise or penalty spins, not tacks.
	validTurns := make([]schema.TurnEvent, 0, len(turns))
	for _, t := range turns {
		if t.Duration >= cfg.MinTurnDuration.Seconds() {
			validTurns = append(validTurns, t)
			diag.ValidTurns = append(diag.ValidTurns, t.StartIndex)
		}
	}

	// Edge turns are often partial or truncated and bias the estimate.
	// Only drop them when enough turns remain to still have two per tack.
	usedTurns := validTurns
	if cfg.ExcludeEdges && len(validTurns) >= 4 {
		usedTurns = validTurns[1 : len(validTurns)-1]
	}
	for _, t := range usedTurns {
		diag.UsedTurns = append(diag.UsedTurns, t.StartIndex)
	}

	if len(usedTurns) < 2 {
		direction, dominant := oppositeMedianCourse(smoothedCourses)
		diag.DominantCourse = dominant
		return schema.WindEstimate{
			Direction:   direction,
			Known:       true,
			Method:      schema.FallbackMedianMethod,
			Diagnostics: diag,
		}
	}

	// Collect boundary courses: all pre-turn headings, then all post-turn
	// headings. The clustering is first-fit in input order, so this order
	// is part of the algorithm's observable behavior.
	headings := make([]float64, 0, 2*len(usedTurns))
	for _, t := range usedTurns {
		headings = append(headings, t.StartCourse)
	}
	for _, t := range usedTurns {
		headings = append(headings, t.EndCourse)
	}

	groups := clusterHeadings(headings)
	diag.CourseGroups = groups

	if len(groups) < 2 {
		direction, dominant := oppositeMedianCourse(smoothedCourses)
		diag.DominantCourse = dominant
		return schema.WindEstimate{
			Direction:   direction,
			Known:       true,
			Method:      schema.DominantCourseMethod,
			Diagnostics: diag,
		}
	}

	// The two largest groups are the two main tacking directions. The sort
	// is stable so equally sized groups keep their discovery order.
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Size() > groups[b].Size()
	})
	meanA := groups[0].Mean
	meanB := groups[1].Mean
	diag.MainGroupMeans = []float64{meanA, meanB}

	axis := tackingAxis(meanA, meanB)
	diag.TackingAxis = axis

	return schema.WindEstimate{
		Direction:   windFromAxis(axis, cfg.WindConvention),
		Known:       true,
		Method:      schema.TackingPatternMethod,
		Diagnostics: diag,
	}
}

// clusterHeadings groups mutually similar headings with a greedy first-fit
// pass: each heading joins the first existing group whose circular mean is
// within clusterThreshold, else starts a new group. Single pass and
// order-dependent, which is good enough to separate two tack headings that
// sit roughly 90 degrees apart.
func clusterHeadings(headings []float64) []schema.CourseGroup {
	groups := []schema.CourseGroup{}
	for _, h := range headings {
		added := false
		for i := range groups {
			if IsSimilarBearing(h, groups[i].Mean, clusterThreshold) {
				groups[i].Courses = append(groups[i].Courses, h)
				groups[i].Mean = CircularMean(groups[i].Courses)
				added = true
				break
			}
		}
		if !added {
			groups = append(groups, schema.CourseGroup{Courses: []float64{h}, Mean: h})
		}
	}
	return groups
}

// tackingAxis bisects the two main tack headings. When the raw numeric gap
// between the means exceeds 180 the pair straddles the 0/360 boundary, so
// the smaller mean is lifted by a full turn before averaging.
func tackingAxis(meanA, meanB float64) float64 {
	if math.Abs(meanA-meanB) > 180 {
		if meanA < meanB {
			meanA += 360
		} else {
			meanB += 360
		}
	}
	return NormalizeDegrees((meanA + meanB) / 2)
}

// windFromAxis converts a tacking axis into a wind direction.
//
// The canonical convention reads the wind as opposing the axis: boats beat
// upwind, so their average heading axis points into the wind. The
// perpendicular convention instead takes whichever of axis+90/axis-90 is
// numerically closer to north. The two are not equivalent; callers pick one
// and stay with it.
func windFromAxis(axis float64, convention schema.WindConvention) float64 {
	if convention == schema.PerpendicularAxis {
		option1 := NormalizeDegrees(axis + 90)
		option2 := NormalizeDegrees(axis - 90)
		if math.Abs(option1) < math.Abs(option2) {
			return option1
		}
		return option2
	}
	return NormalizeDegrees(axis + 180)
}

// oppositeMedianCourse estimates the wind as opposite the dominant sailed
// heading. Returns the wind direction and the dominant course it came from.
func oppositeMedianCourse(smoothedCourses []float64) (float64, float64) {
	dominant := CircularMedian(smoothedCourses)
	return NormalizeDegrees(dominant + 180), dominant
}
