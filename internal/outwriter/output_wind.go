package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/schema"
)

// WriteWindResult outputs the wind estimate, dispatching based on the output format configured.
func WriteWindResult(wind schema.WindEstimate, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := floatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, wind)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWindCSVResult(wind, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWindText(wind, fmtFloat, duration, w)
		}, "Wrote text")
	}
	return nil
}

// writeWindCSVResult handles opening the file and calling the CSV writer.
func writeWindCSVResult(wind schema.WindEstimate, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"direction", "known", "method", "tacking_axis", "used_turns"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			rec := []string{
				fmtFloat(wind.Direction),
				fmt.Sprintf("%t", wind.Known),
				string(wind.Method),
				fmtFloat(wind.Diagnostics.TackingAxis),
				strconv.Itoa(len(wind.Diagnostics.UsedTurns)),
			}
			return csvWriter.Write(rec)
		})
	}, "Wrote CSV")
}

// writeWindText writes the human-readable wind report with diagnostics.
func writeWindText(wind schema.WindEstimate, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if !wind.Known {
		if _, err := fmt.Fprintln(writer, "Wind direction: unknown (not enough data)"); err != nil {
			return err
		}
		_, err := fmt.Fprintf(writer, "Analysis completed in %v\n", duration)
		return err
	}

	if _, err := fmt.Fprintf(writer, "Wind direction: %s°\n", fmtFloat(wind.Direction)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Method: %s\n", wind.Method); err != nil {
		return err
	}

	diag := wind.Diagnostics
	switch wind.Method {
	case schema.TackingPatternMethod:
		if _, err := fmt.Fprintf(writer, "Tacking axis: %s°\n", fmtFloat(diag.TackingAxis)); err != nil {
			return err
		}
		for i, mean := range diag.MainGroupMeans {
			if _, err := fmt.Fprintf(writer, "Main heading %d: %s°\n", i+1, fmtFloat(mean)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(writer, "Turns used: %d of %d detected\n",
			len(diag.UsedTurns), len(diag.PotentialTurns)); err != nil {
			return err
		}
	case schema.DominantCourseMethod, schema.FallbackMedianMethod:
		if _, err := fmt.Fprintf(writer, "Dominant course: %s°\n", fmtFloat(diag.DominantCourse)); err != nil {
			return err
		}
	case schema.ForcedMethod:
		if _, err := fmt.Fprintln(writer, "Direction supplied on the command line"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(writer, "Analysis completed in %v\n", duration)
	return err
}
