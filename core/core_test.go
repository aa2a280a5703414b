package core

import (
	"math"
	"time"

	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/schema"
)

// testConfig returns a config with the stock detection parameters.
func testConfig() *contract.Config {
	return &contract.Config{
		WindowSize:       contract.DefaultWindowSize,
		AngleThreshold:   contract.DefaultAngleThreshold,
		TimeThreshold:    contract.DefaultTimeThreshold,
		MinTurnDuration:  contract.DefaultMinTurnDuration,
		ExcludeEdges:     true,
		BearingThreshold: contract.DefaultBearingThreshold,
		Detector:         schema.TwoPhaseDetector,
		WindConvention:   schema.OppositeAxis,
		LabelTurns:       true,
		Output:           schema.TextOut,
		Precision:        contract.DefaultPrecision,
	}
}

// makeTrack walks a synthetic track from a fixed origin: one leg per
// heading, each legMeters long and step apart in time. The returned track
// has len(headings)+1 points.
func makeTrack(headings []float64, legMeters float64, step time.Duration) []schema.TrackPoint {
	const metersPerDegree = 111320.0

	lat, lon := 37.8, -122.4
	ts := time.Date(2025, 6, 14, 13, 0, 0, 0, time.UTC)

	points := []schema.TrackPoint{{Lat: lat, Lon: lon, Time: ts}}
	for _, h := range headings {
		rad := h * math.Pi / 180
		lat += legMeters * math.Cos(rad) / metersPerDegree
		lon += legMeters * math.Sin(rad) / (metersPerDegree * math.Cos(lat*math.Pi/180))
		ts = ts.Add(step)
		points = append(points, schema.TrackPoint{Lat: lat, Lon: lon, Time: ts})
	}
	return points
}

// repeatHeadings builds a leg-heading sequence from (heading, count) runs.
func repeatHeadings(runs ...[2]float64) []float64 {
	headings := []float64{}
	for _, run := range runs {
		for i := 0; i < int(run[1]); i++ {
			headings = append(headings, run[0])
		}
	}
	return headings
}
