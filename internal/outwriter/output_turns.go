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

// WriteTurnResults outputs the detected turn events, dispatching based on the output format configured.
func WriteTurnResults(turns []schema.TurnEvent, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := floatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForTurns(w, turns)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeTurnCSVResults(turns, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTurnTable(turns, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeTurnCSVResults handles opening the file and calling the CSV writer.
func writeTurnCSVResults(turns []schema.TurnEvent, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"turn",
			"start_index",
			"end_index",
			"start_time",
			"end_time",
			"duration_s",
			"start_course",
			"end_course",
			"course_change",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForTurns(csvWriter, turns, fmtFloat)
		})
	}, "Wrote CSV")
}

// writeTurnTable generates and writes the human-readable table.
func writeTurnTable(turns []schema.TurnEvent, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	timeFormat := GetTableTimeFormat()

	table.Header([]string{"Turn", "Start", "Dur (s)", "From", "To", "Change"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, t := range turns {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			t.StartTime.Format(timeFormat),
			fmtFloat(t.Duration),
			fmtFloat(t.StartCourse),
			fmtFloat(t.EndCourse),
			fmtFloat(t.CourseChange),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Detected %d turns\n", len(turns)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForTurns writes the turn events in CSV format.
func writeCSVResultsForTurns(w *csv.Writer, turns []schema.TurnEvent, fmtFloat func(float64) string) error {
	for i, t := range turns {
		rec := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(t.StartIndex),
			strconv.Itoa(t.EndIndex),
			t.StartTime.Format(contract.DateTimeFormat),
			t.EndTime.Format(contract.DateTimeFormat),
			fmtFloat(t.Duration),
			fmtFloat(t.StartCourse),
			fmtFloat(t.EndCourse),
			fmtFloat(t.CourseChange),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForTurns writes the turn events in JSON format.
func writeJSONResultsForTurns(w io.Writer, turns []schema.TurnEvent) error {
	type JSONTurnResult struct {
		Rank int `json:"rank"`
		schema.TurnEvent
	}

	output := make([]JSONTurnResult, len(turns))
	for i, t := range turns {
		output[i] = JSONTurnResult{Rank: i + 1, TurnEvent: t}
	}

	return writeJSON(w, output)
}
