package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/internal/resultstore"
	"github.com/sailhq/windward/schema"
)

// WriteRunHistory renders the persisted analysis runs as a table.
func WriteRunHistory(runs []resultstore.RunRecord, precision int, writer io.Writer) error {
	fmtFloat := floatFormatter(precision)

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Run", "GPX", "Time", "Wind", "Method", "Points", "Turns", "Segments"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range runs {
		wind := "unknown"
		if r.WindKnown {
			wind = fmtFloat(r.WindDirection) + "°"
		}
		data = append(data, []string{
			strconv.FormatInt(r.RunID, 10),
			r.GPXPath,
			r.RunTime.Format(contract.DateTimeFormat),
			wind,
			r.WindMethod,
			strconv.Itoa(r.NumPoints),
			strconv.Itoa(r.NumTurns),
			strconv.Itoa(r.NumSegments),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "Showing %d runs\n", len(runs))
	return err
}

// WriteRunMetrics renders the stored segment metrics for one run.
func WriteRunMetrics(runID int64, metrics []schema.SegmentMetrics, precision int, writer io.Writer) error {
	fmtFloat := floatFormatter(precision)
	timeFormat := GetTableTimeFormat()

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Seg", "Kind", "Points", "Start", "Dur (s)", "Dist (m)", "Speed (kn)", "Bearing", "Tack", "Point of Sail"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, m := range metrics {
		data = append(data, []string{
			strconv.Itoa(m.Index + 1),
			contract.GetColorKindLabel(m.Kind),
			strconv.Itoa(m.NumPoints),
			m.StartTime.Format(timeFormat),
			fmtFloat(m.Duration),
			fmtFloat(m.Distance),
			fmtFloat(m.AvgSpeedKnots),
			fmtFloat(m.Bearing),
			contract.GetColorTackLabel(m.DominantTack),
			string(m.PointOfSail),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "Run %d: %d segments\n", runID, len(metrics))
	return err
}
