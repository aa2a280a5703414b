package core

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/sailhq/windward/internal/units"
	"github.com/sailhq/windward/schema"
)

// windAngleBinWidth is the bin width in degrees for the wind-angle speed
// breakdown.
const windAngleBinWidth = 10

// BuildPerformanceReport relates per-point boat speed to wind geometry:
// one row per point pair plus speed statistics grouped by point of sail,
// tack, their combination, and wind-angle bins. The analysis must carry a
// known wind direction.
//
// Point pairs with non-positive time deltas have no defined speed and are
// skipped entirely rather than recorded as zero.
func BuildPerformanceReport(result *schema.AnalysisResult) (*schema.PerformanceReport, error) {
	if !result.Wind.Known {
		return nil, fmt.Errorf("performance analysis requires a known or forced wind direction")
	}

	wind := result.Wind.Direction
	points := result.Points

	rows := make([]schema.PerformancePoint, 0, len(points))
	for i := 1; i < len(points); i++ {
		prev := points[i-1]
		curr := points[i]

		dt := curr.Time.Sub(prev.Time).Seconds()
		if dt <= 0 {
			continue
		}

		bearing := Bearing(prev.Lat, prev.Lon, curr.Lat, curr.Lon)
		speedKnots := units.MpsToKnots(Distance(prev.Lat, prev.Lon, curr.Lat, curr.Lon) / dt)

		tack := schema.UnknownTack
		if i < len(result.Tacks) {
			tack = result.Tacks[i]
		}

		windAngle := RelativeWindAngle(bearing, wind)
		rows = append(rows, schema.PerformancePoint{
			Time:        curr.Time,
			SpeedKnots:  speedKnots,
			Course:      bearing,
			WindAngle:   windAngle,
			Tack:        string(tack),
			PointOfSail: string(PointOfSailFor(windAngle)),
		})
	}

	report := &schema.PerformanceReport{
		WindDirection: wind,
		Points:        rows,
	}
	if len(rows) == 0 {
		return report, nil
	}

	speeds := make([]float64, len(rows))
	for i, r := range rows {
		speeds[i] = r.SpeedKnots
	}
	report.AvgSpeed = stat.Mean(speeds, nil)
	report.MaxSpeed = maxOf(speeds)

	report.ByPointOfSail = groupSpeeds(rows, func(r schema.PerformancePoint) string {
		return r.PointOfSail
	})
	report.ByTack = groupSpeeds(rows, func(r schema.PerformancePoint) string {
		return r.Tack
	})
	report.ByCombination = groupSpeeds(rows, func(r schema.PerformancePoint) string {
		return fmt.Sprintf("%s on %s tack", r.PointOfSail, r.Tack)
	})
	report.ByWindAngle = groupSpeeds(rows, func(r schema.PerformancePoint) string {
		bin := int(r.WindAngle/windAngleBinWidth) * windAngleBinWidth
		return fmt.Sprintf("%3d-%d deg", bin, bin+windAngleBinWidth)
	})

	return report, nil
}

// groupSpeeds buckets row speeds by a key function and summarizes each
// bucket. Buckets come back sorted by name so output order is stable.
func groupSpeeds(rows []schema.PerformancePoint, keyFn func(schema.PerformancePoint) string) []schema.GroupStats {
	buckets := make(map[string][]float64)
	for _, r := range rows {
		key := keyFn(r)
		buckets[key] = append(buckets[key], r.SpeedKnots)
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]schema.GroupStats, 0, len(names))
	for _, name := range names {
		speeds := buckets[name]
		stddev := 0.0
		if len(speeds) > 1 {
			stddev = stat.StdDev(speeds, nil)
		}
		groups = append(groups, schema.GroupStats{
			Name:   name,
			Count:  len(speeds),
			Mean:   stat.Mean(speeds, nil),
			Max:    maxOf(speeds),
			StdDev: stddev,
		})
	}
	return groups
}

func maxOf(values []float64) float64 {
	m := math.Inf(-1)
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}
