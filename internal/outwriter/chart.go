package outwriter

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/sailhq/windward/schema"
)

// Series colors matching the navigation-light convention used in tables.
const (
	portSeriesColor      = "#d62728"
	starboardSeriesColor = "#2ca02c"
	unknownSeriesColor   = "#17becf"
	turnSeriesColor      = "#ff7f0e"
)

// courseHistogramBinWidth is the bucket size of the heading histogram.
const courseHistogramBinWidth = 10

// RenderAnalysisCharts writes a standalone HTML page with the course
// timeline, the track map colored by tack, and a heading histogram.
func RenderAnalysisCharts(result *schema.AnalysisResult, chartFile string) error {
	page := components.NewPage()
	page.PageTitle = "windward analysis"
	page.AddCharts(
		buildCourseChart(result),
		buildTrackChart(result),
		buildHistogramChart(result),
	)

	file, err := os.Create(chartFile)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := page.Render(file); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote charts to %s\n", chartFile)
	return nil
}

// buildCourseChart plots raw and smoothed course over point index, with
// detected turns marked as a scatter overlay.
func buildCourseChart(result *schema.AnalysisResult) components.Charter {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Course over track", Subtitle: courseSubtitle(result)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Point"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Course (deg)", Min: 0, Max: 360}),
	)

	xAxis := make([]string, len(result.Courses))
	raw := make([]opts.LineData, len(result.Courses))
	smoothed := make([]opts.LineData, len(result.SmoothedCourses))
	for i, c := range result.Courses {
		xAxis[i] = strconv.Itoa(i)
		raw[i] = opts.LineData{Value: c}
	}
	for i, c := range result.SmoothedCourses {
		smoothed[i] = opts.LineData{Value: c}
	}

	line.SetXAxis(xAxis).
		AddSeries("raw", raw).
		AddSeries("smoothed", smoothed)

	if len(result.Turns) > 0 {
		marks := make([]opts.ScatterData, 0, len(result.Turns))
		for _, t := range result.Turns {
			if t.StartIndex < len(result.SmoothedCourses) {
				marks = append(marks, opts.ScatterData{
					Value: []interface{}{strconv.Itoa(t.StartIndex), result.SmoothedCourses[t.StartIndex]},
				})
			}
		}
		scatter := charts.NewScatter()
		scatter.AddSeries("turns", marks,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: turnSeriesColor}),
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 12}),
		)
		line.Overlap(scatter)
	}

	return line
}

// buildTrackChart plots the lon/lat track as one scatter series per tack.
func buildTrackChart(result *schema.AnalysisResult) components.Charter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Track by tack", Subtitle: windSubtitle(result.Wind)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Longitude", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Latitude", Scale: opts.Bool(true)}),
	)

	series := map[schema.Tack][]opts.ScatterData{}
	for i, p := range result.Points {
		tack := schema.UnknownTack
		if i < len(result.Tacks) {
			tack = result.Tacks[i]
		}
		series[tack] = append(series[tack], opts.ScatterData{Value: []interface{}{p.Lon, p.Lat}})
	}

	for _, entry := range []struct {
		tack  schema.Tack
		color string
	}{
		{schema.PortTack, portSeriesColor},
		{schema.StarboardTack, starboardSeriesColor},
		{schema.UnknownTack, unknownSeriesColor},
	} {
		if data := series[entry.tack]; len(data) > 0 {
			scatter.AddSeries(string(entry.tack), data,
				charts.WithItemStyleOpts(opts.ItemStyle{Color: entry.color}),
				charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 5}),
			)
		}
	}

	return scatter
}

// buildHistogramChart plots a histogram of smoothed headings.
func buildHistogramChart(result *schema.AnalysisResult) components.Charter {
	bins := make([]int, 360/courseHistogramBinWidth)
	for _, c := range result.SmoothedCourses {
		idx := int(c) / courseHistogramBinWidth
		if idx >= len(bins) {
			idx = len(bins) - 1
		}
		bins[idx]++
	}

	xAxis := make([]string, len(bins))
	data := make([]opts.BarData, len(bins))
	for i, count := range bins {
		xAxis[i] = fmt.Sprintf("%d°", i*courseHistogramBinWidth)
		data[i] = opts.BarData{Value: count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Heading distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Heading"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Points"}),
	)
	bar.SetXAxis(xAxis).AddSeries("points", data)

	return bar
}

// courseSubtitle summarizes the turn count for the course chart.
func courseSubtitle(result *schema.AnalysisResult) string {
	return fmt.Sprintf("points=%d turns=%d", len(result.Points), len(result.Turns))
}

// windSubtitle summarizes the wind estimate for the track chart.
func windSubtitle(wind schema.WindEstimate) string {
	if !wind.Known {
		return "wind unknown"
	}
	return fmt.Sprintf("wind %.1f° (%s)", wind.Direction, wind.Method)
}
