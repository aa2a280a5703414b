package outwriter

import (
	"time"

	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/schema"
)

// testConfig returns a validated config pointed at a temp output file.
func testConfig(output schema.OutputMode, outputFile string) *contract.Config {
	return &contract.Config{
		Output:     output,
		OutputFile: outputFile,
		Precision:  2,
	}
}

// sampleResult builds a small but fully populated analysis result.
func sampleResult() *schema.AnalysisResult {
	start := time.Date(2025, 6, 14, 13, 0, 0, 0, time.UTC)

	points := make([]schema.TrackPoint, 6)
	for i := range points {
		points[i] = schema.TrackPoint{
			Lat:  37.8 + float64(i)*0.0005,
			Lon:  -122.4 + float64(i)*0.0005,
			Time: start.Add(time.Duration(i) * 10 * time.Second),
		}
	}

	turn := schema.TurnEvent{
		StartIndex:   2,
		EndIndex:     3,
		StartCourse:  45,
		EndCourse:    135,
		CourseChange: 90,
		StartTime:    points[2].Time,
		EndTime:      points[3].Time,
		Duration:     10,
	}

	return &schema.AnalysisResult{
		Points:          points,
		Courses:         []float64{45, 45, 135, 135, 135, 135},
		SmoothedCourses: []float64{45, 45, 90, 135, 135, 135},
		Turns:           []schema.TurnEvent{turn},
		Wind: schema.WindEstimate{
			Direction: 90,
			Known:     true,
			Method:    schema.TackingPatternMethod,
			Diagnostics: schema.WindDiagnostics{
				TackingAxis:    90,
				MainGroupMeans: []float64{45, 135},
				PotentialTurns: []int{2},
				ValidTurns:     []int{2},
				UsedTurns:      []int{2},
			},
		},
		Tacks: []schema.Tack{
			schema.PortTack, schema.PortTack, schema.PortTack,
			schema.StarboardTack, schema.StarboardTack, schema.StarboardTack,
		},
		Segments: []schema.Segment{
			{Kind: schema.StraightSegment, StartIndex: 0, EndIndex: 2},
			{Kind: schema.TurnSegment, StartIndex: 2, EndIndex: 3, StartCourse: 45, EndCourse: 135, CourseChange: 90},
			{Kind: schema.StraightSegment, StartIndex: 3, EndIndex: 5},
		},
		Metrics: []schema.SegmentMetrics{
			{
				Index: 0, Kind: schema.StraightSegment, NumPoints: 3,
				StartTime: points[0].Time, EndTime: points[2].Time,
				Duration: 20, Distance: 150, AvgSpeedMps: 7.5, AvgSpeedKnots: 14.58,
				Bearing: 45, DominantTack: schema.PortTack,
				RelativeWindAngle: 135, PointOfSail: schema.BroadReach,
			},
			{
				Index: 1, Kind: schema.TurnSegment, NumPoints: 2,
				StartTime: points[2].Time, EndTime: points[3].Time,
				Duration: 10, Distance: 70, AvgSpeedMps: 7, AvgSpeedKnots: 13.61,
				Bearing: 90, DominantTack: schema.MixedTack,
				RelativeWindAngle: 180, PointOfSail: schema.Turning,
			},
			{
				Index: 2, Kind: schema.StraightSegment, NumPoints: 3,
				StartTime: points[3].Time, EndTime: points[5].Time,
				Duration: 20, Distance: 150, AvgSpeedMps: 7.5, AvgSpeedKnots: 14.58,
				Bearing: 135, DominantTack: schema.StarboardTack,
				RelativeWindAngle: 135, PointOfSail: schema.BroadReach,
			},
		},
	}
}

// samplePerformanceReport builds a small performance report.
func samplePerformanceReport() *schema.PerformanceReport {
	start := time.Date(2025, 6, 14, 13, 0, 0, 0, time.UTC)
	return &schema.PerformanceReport{
		WindDirection: 90,
		Points: []schema.PerformancePoint{
			{Time: start.Add(10 * time.Second), SpeedKnots: 14.5, Course: 45, WindAngle: 135, Tack: "port", PointOfSail: "Broad Reach"},
			{Time: start.Add(20 * time.Second), SpeedKnots: 13.2, Course: 135, WindAngle: 135, Tack: "starboard", PointOfSail: "Broad Reach"},
		},
		AvgSpeed: 13.85,
		MaxSpeed: 14.5,
		ByPointOfSail: []schema.GroupStats{
			{Name: "Broad Reach", Count: 2, Mean: 13.85, Max: 14.5, StdDev: 0.92},
		},
		ByTack: []schema.GroupStats{
			{Name: "port", Count: 1, Mean: 14.5, Max: 14.5},
			{Name: "starboard", Count: 1, Mean: 13.2, Max: 13.2},
		},
		ByCombination: []schema.GroupStats{
			{Name: "Broad Reach on port tack", Count: 1, Mean: 14.5, Max: 14.5},
			{Name: "Broad Reach on starboard tack", Count: 1, Mean: 13.2, Max: 13.2},
		},
		ByWindAngle: []schema.GroupStats{
			{Name: "130-140 deg", Count: 2, Mean: 13.85, Max: 14.5, StdDev: 0.92},
		},
	}
}
