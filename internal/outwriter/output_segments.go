package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/schema"
)

// WriteSegmentResults outputs the segment metrics, dispatching based on the output format configured.
func WriteSegmentResults(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat := floatFormatter(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeSegmentJSONResults(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeSegmentCSVResults(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSegmentTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeSegmentJSONResults handles opening the file and calling the JSON writer.
func writeSegmentJSONResults(result *schema.AnalysisResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForSegments(w, result)
	}, "Wrote JSON")
}

// writeSegmentCSVResults handles opening the file and calling the CSV writer.
func writeSegmentCSVResults(result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"segment",
			"kind",
			"points",
			"start_time",
			"end_time",
			"duration_s",
			"distance_m",
			"avg_speed_knots",
			"bearing",
			"dominant_tack",
			"relative_wind_angle",
			"point_of_sail",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForSegments(csvWriter, result.Metrics, fmtFloat)
		})
	}, "Wrote CSV")
}

// writeSegmentTable generates and writes the human-readable table.
func writeSegmentTable(result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if err := writeWindSummaryLine(writer, result.Wind, fmtFloat); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	timeFormat := GetTableTimeFormat()

	// 1. Define Headers
	headers := []string{"Seg", "Kind", "Points", "Start", "Dur (s)", "Dist (m)", "Speed (kn)", "Bearing"}
	if result.Wind.Known {
		headers = append(headers, "Tack", "Wind Angle", "Point of Sail")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, m := range result.Metrics {
		row := []string{
			strconv.Itoa(m.Index + 1),
			contract.GetColorKindLabel(m.Kind),
			strconv.Itoa(m.NumPoints),
			m.StartTime.Format(timeFormat),
			fmtFloat(m.Duration),
			fmtFloat(m.Distance),
			fmtFloat(m.AvgSpeedKnots),
			fmtFloat(m.Bearing),
		}
		if result.Wind.Known {
			row = append(row,
				contract.GetColorTackLabel(m.DominantTack),
				fmtFloat(m.RelativeWindAngle),
				string(m.PointOfSail),
			)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	totalDistance := 0.0
	turnCount := 0
	for _, m := range result.Metrics {
		totalDistance += m.Distance
		if m.Kind == schema.TurnSegment {
			turnCount++
		}
	}
	if _, err := fmt.Fprintf(writer, "Showing %d segments over %d points (%s m sailed, %d turns)\n",
		len(result.Metrics), len(result.Points), fmtFloat(totalDistance), turnCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForSegments writes the segment metrics in CSV format.
func writeCSVResultsForSegments(w *csv.Writer, metrics []schema.SegmentMetrics, fmtFloat func(float64) string) error {
	for _, m := range metrics {
		rec := []string{
			strconv.Itoa(m.Index + 1),
			string(m.Kind),
			strconv.Itoa(m.NumPoints),
			m.StartTime.Format(contract.DateTimeFormat),
			m.EndTime.Format(contract.DateTimeFormat),
			fmtFloat(m.Duration),
			fmtFloat(m.Distance),
			fmtFloat(m.AvgSpeedKnots),
			fmtFloat(m.Bearing),
			contract.GetPlainTackLabel(m.DominantTack),
			fmtFloat(m.RelativeWindAngle),
			string(m.PointOfSail),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForSegments writes the analysis results in JSON format.
func writeJSONResultsForSegments(w io.Writer, result *schema.AnalysisResult) error {
	// Wind and metrics together so consumers get the full picture in one document
	type JSONSegmentResults struct {
		Wind     schema.WindEstimate     `json:"wind"`
		Segments []schema.Segment        `json:"segments"`
		Metrics  []schema.SegmentMetrics `json:"metrics"`
	}

	output := JSONSegmentResults{
		Wind:     result.Wind,
		Segments: result.Segments,
		Metrics:  result.Metrics,
	}

	return writeJSON(w, output)
}

// writeWindSummaryLine prints the one-line wind header shown above tables.
func writeWindSummaryLine(w io.Writer, wind schema.WindEstimate, fmtFloat func(float64) string) error {
	if !wind.Known {
		_, err := fmt.Fprintln(w, "Wind direction: unknown")
		return err
	}
	_, err := fmt.Fprintf(w, "Wind direction: %s° (method: %s)\n", fmtFloat(wind.Direction), wind.Method)
	return err
}
