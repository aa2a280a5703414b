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

// WritePerformanceReport outputs the speed-vs-wind report, dispatching based on the output format configured.
func WritePerformanceReport(report *schema.PerformanceReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := floatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writePerformanceCSVResults(report, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePerformanceTables(report, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writePerformanceCSVResults writes the per-point rows; group stats belong to
// the table and JSON forms.
func writePerformanceCSVResults(report *schema.PerformanceReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"time", "speed_knots", "course", "wind_angle", "tack", "point_of_sail"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, p := range report.Points {
				rec := []string{
					p.Time.Format(contract.DateTimeFormat),
					fmtFloat(p.SpeedKnots),
					fmtFloat(p.Course),
					fmtFloat(p.WindAngle),
					p.Tack,
					p.PointOfSail,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writePerformanceTables writes the summary line plus one table per grouping.
func writePerformanceTables(report *schema.PerformanceReport, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Wind direction: %s°\n", fmtFloat(report.WindDirection)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Overall: %s kn avg, %s kn max over %d points\n",
		fmtFloat(report.AvgSpeed), fmtFloat(report.MaxSpeed), len(report.Points)); err != nil {
		return err
	}

	groupings := []struct {
		title  string
		groups []schema.GroupStats
	}{
		{"By point of sail", report.ByPointOfSail},
		{"By tack", report.ByTack},
		{"By point of sail and tack", report.ByCombination},
		{"By wind angle", report.ByWindAngle},
	}

	for _, grouping := range groupings {
		if len(grouping.groups) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(writer, "\n%s:\n", grouping.title); err != nil {
			return err
		}
		if err := writeGroupStatsTable(grouping.groups, fmtFloat, writer); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "\nAnalysis completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeGroupStatsTable renders one grouping as a table.
func writeGroupStatsTable(groups []schema.GroupStats, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Group", "Points", "Avg (kn)", "Max (kn)", "StdDev"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, g := range groups {
		data = append(data, []string{
			g.Name,
			strconv.Itoa(g.Count),
			fmtFloat(g.Mean),
			fmtFloat(g.Max),
			fmtFloat(g.StdDev),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
