package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sailhq/windward/core"
	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/internal/outwriter"
)

// performanceCmd reports boat speed grouped against wind geometry.
var performanceCmd = &cobra.Command{
	Use:   "performance <gpx-file>",
	Short: "Report boat speed by point of sail, tack, and wind angle.",
	Long: `Analyze per-point boat speed against the wind.

Computes speed, course, and wind angle for every point pair, then groups
speed statistics by point of sail, tack, their combination, and 10-degree
wind angle bins. Requires a wind direction, either estimated from the
track or forced with --wind.

Examples:
  # Speed breakdown with estimated wind
  windward performance race.gpx

  # Force the wind direction recorded by the race committee
  windward performance race.gpx --wind 225

  # Export per-point rows to CSV
  windward performance race.gpx --output csv --output-file rows.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		result, duration, err := runPipeline()
		if err != nil {
			contract.LogFatal("Cannot analyze track", err)
		}
		report, err := core.BuildPerformanceReport(result)
		if err != nil {
			contract.LogFatal("Cannot run performance analysis", err)
		}
		if err := outwriter.WritePerformanceReport(report, cfg, duration); err != nil {
			contract.LogFatal("Cannot write performance report", err)
		}
	},
}
