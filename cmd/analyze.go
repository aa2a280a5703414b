package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/sailhq/windward/core"
	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/internal/outwriter"
	"github.com/sailhq/windward/internal/parquet"
	"github.com/sailhq/windward/internal/resultstore"
	"github.com/sailhq/windward/schema"
)

// analyzeCmd runs the full pipeline and reports per-segment metrics.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <gpx-file>",
	Short: "Segment a track into straight legs and turns with per-segment metrics.",
	Long: `Run the full analysis pipeline on a GPX track.

Computes point-to-point courses, smooths them, detects tacks and gybes,
estimates the true wind direction, and partitions the track into straight
and turning segments with speed, distance, and point-of-sail metrics.

Examples:
  # Analyze a race track with defaults
  windward analyze race.gpx

  # Force a known wind direction instead of estimating it
  windward analyze race.gpx --wind 225

  # Export segment metrics to CSV
  windward analyze race.gpx --output csv --output-file segments.csv

  # Render an HTML chart page alongside the table
  windward analyze race.gpx --chart-file race.html

  # Record the run in a local SQLite database
  windward analyze race.gpx --db season.db`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		result, duration, err := runPipeline()
		if err != nil {
			contract.LogFatal("Cannot analyze track", err)
		}

		if err := outwriter.WriteSegmentResults(result, cfg, duration); err != nil {
			contract.LogFatal("Cannot write segment results", err)
		}

		if cfg.ChartFile != "" {
			if err := outwriter.RenderAnalysisCharts(result, cfg.ChartFile); err != nil {
				contract.LogFatal("Cannot render charts", err)
			}
		}

		if cfg.DBPath != "" {
			if err := saveRun(result); err != nil {
				contract.LogFatal("Cannot record run", err)
			}
		}

		if cfg.ParquetFile != "" {
			if err := exportParquet(result); err != nil {
				contract.LogWarn("Cannot export performance rows", err)
			}
		}
	},
}

// saveRun records the run and its segment metrics in the configured database.
func saveRun(result *schema.AnalysisResult) error {
	store, err := resultstore.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	params := map[string]any{
		"window-size":       cfg.WindowSize,
		"angle-threshold":   cfg.AngleThreshold,
		"time-threshold":    cfg.TimeThreshold.String(),
		"min-turn-duration": cfg.MinTurnDuration.String(),
		"detector":          string(cfg.Detector),
		"wind-convention":   string(cfg.WindConvention),
		"exclude-edges":     cfg.ExcludeEdges,
	}

	_, err = store.SaveAnalysis(cfg.GPXPath, time.Now().UTC(), result, params)
	return err
}

// exportParquet writes the per-point performance rows, which require a known
// wind direction.
func exportParquet(result *schema.AnalysisResult) error {
	report, err := core.BuildPerformanceReport(result)
	if err != nil {
		return err
	}
	return parquet.WritePerformancePoints(report.Points, cfg.ParquetFile)
}
