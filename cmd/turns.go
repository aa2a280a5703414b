package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/internal/outwriter"
)

// turnsCmd lists the detected tacks and gybes.
var turnsCmd = &cobra.Command{
	Use:   "turns <gpx-file>",
	Short: "List detected tacks and gybes.",
	Long: `Detect and list the turns in a track.

A turn is a course change larger than the angle threshold that completes
and stabilizes within the time threshold. Gentle curves and slow drifts
do not qualify.

Examples:
  # List turns with defaults
  windward turns race.gpx

  # Catch smaller course changes with the more sensitive scan
  windward turns race.gpx --detector single-phase --angle-threshold 45

  # Export turn events to CSV
  windward turns race.gpx --output csv --output-file turns.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		result, duration, err := runPipeline()
		if err != nil {
			contract.LogFatal("Cannot analyze track", err)
		}
		if err := outwriter.WriteTurnResults(result.Turns, cfg, duration); err != nil {
			contract.LogFatal("Cannot write turn results", err)
		}
	},
}
