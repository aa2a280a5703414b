// Package schema has configs, models and constants for all parts of windward.
package schema

import "time"

// TrackPoint is a single timestamped GPS fix from a GPX track.
// Sequences of TrackPoints are ordered by strictly increasing timestamps;
// the parser drops points that violate that ordering, so downstream code
// may assume a valid monotonic sequence.
type TrackPoint struct {
	Lat       float64   // Latitude in decimal degrees
	Lon       float64   // Longitude in decimal degrees
	Time      time.Time // UTC timestamp of the fix
	Elevation *float64  // Elevation in meters, nil when absent from the file
}

// TurnEvent is a detected tack or gybe: a large, sustained course change
// that stabilizes within a bounded time window.
//
// StartIndex and EndIndex are inclusive and live in point-index space.
// EndCourse is the stabilized course observed inside the scan window; it is
// not necessarily the course at EndIndex.
type TurnEvent struct {
	StartIndex   int       `json:"start_index"`
	EndIndex     int       `json:"end_index"`
	StartCourse  float64   `json:"start_course"`  // Course before the turn began, degrees [0,360)
	EndCourse    float64   `json:"end_course"`    // Stabilized course after the turn, degrees [0,360)
	CourseChange float64   `json:"course_change"` // Maximum course change observed during the turn
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Duration     float64   `json:"duration_s"` // EndTime - StartTime in seconds
}

// CourseGroup is a transient cluster of mutually similar headings built
// during wind estimation. Courses keeps insertion order because the
// clustering is first-fit greedy and therefore order-dependent.
type CourseGroup struct {
	Courses []float64 `json:"courses"` // Member headings in insertion order
	Mean    float64   `json:"mean"`    // Circular mean of the members, degrees [0,360)
}

// Size returns the number of headings in the group.
func (g CourseGroup) Size() int { return len(g.Courses) }

// WindDiagnostics captures the intermediate state of a wind estimation run
// so callers can visualize or debug how the estimate was derived.
type WindDiagnostics struct {
	CourseGroups    []CourseGroup `json:"course_groups,omitempty"`
	MainGroupMeans  []float64     `json:"main_group_means,omitempty"`
	TackingAxis     float64       `json:"tacking_axis,omitempty"`
	DominantCourse  float64       `json:"dominant_course,omitempty"`
	PotentialTurns  []int         `json:"potential_turns,omitempty"` // Indices that exceeded the entry threshold
	ValidTurns      []int         `json:"valid_turns,omitempty"`     // Indices surviving the min-duration filter
	UsedTurns       []int         `json:"used_turns,omitempty"`      // Indices used after edge exclusion
	ForcedDirection *float64      `json:"forced_direction,omitempty"`
}

// WindEstimate is the estimated true wind direction for a track, in the
// meteorological "coming from" convention.
type WindEstimate struct {
	Direction   float64          `json:"direction"` // Degrees [0,360), valid only when Known
	Known       bool             `json:"known"`     // False when no estimate could be made
	Method      EstimationMethod `json:"method"`
	Diagnostics WindDiagnostics  `json:"diagnostics"`
}

// Segment is a maximal contiguous run of trackpoints tagged as straight
// sailing or a turn. Adjacent segments share their boundary point so that
// rendered polylines stay connected; StartIndex/EndIndex are inclusive.
type Segment struct {
	Kind       SegmentKind `json:"kind"`
	StartIndex int         `json:"start_index"`
	EndIndex   int         `json:"end_index"`

	// Turn metadata, populated only when Kind == TurnSegment.
	StartCourse  float64 `json:"start_course,omitempty"`
	EndCourse    float64 `json:"end_course,omitempty"`
	CourseChange float64 `json:"course_change,omitempty"`
}

// PointCount returns the number of trackpoints covered by the segment.
func (s Segment) PointCount() int { return s.EndIndex - s.StartIndex + 1 }

// SegmentMetrics holds the derived metrics for one segment.
// Wind-dependent fields (DominantTack, RelativeWindAngle, PointOfSail) are
// only meaningful when the analysis produced a known wind direction.
type SegmentMetrics struct {
	Index             int         `json:"index"`
	Kind              SegmentKind `json:"kind"`
	NumPoints         int         `json:"num_points"`
	StartTime         time.Time   `json:"start_time"`
	EndTime           time.Time   `json:"end_time"`
	Duration          float64     `json:"duration_s"`
	Distance          float64     `json:"distance_m"`
	AvgSpeedMps       float64     `json:"avg_speed_mps"`
	AvgSpeedKnots     float64     `json:"avg_speed_knots"`
	Bearing           float64     `json:"bearing"` // First point to last point, not path-averaged
	DominantTack      Tack        `json:"dominant_tack,omitempty"`
	RelativeWindAngle float64     `json:"relative_wind_angle,omitempty"`
	PointOfSail       PointOfSail `json:"point_of_sail,omitempty"`
}

// AnalysisResult is the full output of one pipeline run over a track.
// Every collection is freshly constructed; nothing aliases caller state
// except Points, which the pipeline only reads.
type AnalysisResult struct {
	Points          []TrackPoint
	Courses         []float64 // One per point; last entry duplicates the previous
	SmoothedCourses []float64 // Circular moving average of Courses
	Turns           []TurnEvent
	Wind            WindEstimate
	Tacks           []Tack // One per point
	Segments        []Segment
	Metrics         []SegmentMetrics
}

// PerformancePoint is one per-point row of the performance analysis.
type PerformancePoint struct {
	Time        time.Time   `json:"time" parquet:"time,snappy"`
	SpeedKnots  float64     `json:"speed_knots" parquet:"speed_knots,snappy"`
	Course      float64     `json:"course" parquet:"course,snappy"`
	WindAngle   float64     `json:"wind_angle" parquet:"wind_angle,snappy"`
	Tack        string      `json:"tack" parquet:"tack,snappy"`
	PointOfSail string      `json:"point_of_sail" parquet:"point_of_sail,snappy"`
}

// GroupStats summarizes boat speed over one grouping bucket.
type GroupStats struct {
	Name   string  `json:"name"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean_knots"`
	Max    float64 `json:"max_knots"`
	StdDev float64 `json:"stddev_knots"`
}

// PerformanceReport aggregates per-point speed against wind geometry.
type PerformanceReport struct {
	WindDirection float64            `json:"wind_direction"`
	Points        []PerformancePoint `json:"points"`
	AvgSpeed      float64            `json:"avg_speed_knots"`
	MaxSpeed      float64            `json:"max_speed_knots"`
	ByPointOfSail []GroupStats       `json:"by_point_of_sail"`
	ByTack        []GroupStats       `json:"by_tack"`
	ByCombination []GroupStats       `json:"by_combination"`
	ByWindAngle   []GroupStats       `json:"by_wind_angle"`
}
