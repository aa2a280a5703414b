package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/internal/outwriter"
)

// windCmd estimates the true wind direction for a track.
var windCmd = &cobra.Command{
	Use:   "wind <gpx-file>",
	Short: "Estimate the true wind direction from the tacking pattern.",
	Long: `Estimate the true wind direction of a track.

Clusters the headings sailed before and after each detected turn into the
two main tacking directions and reads the wind off the axis between them.
Falls back to the dominant course when the track has too few clean turns.

Examples:
  # Estimate wind for a race track
  windward wind race.gpx

  # Use the perpendicular-axis convention for reaching courses
  windward wind race.gpx --wind-convention perpendicular

  # Emit the estimate with full diagnostics as JSON
  windward wind race.gpx --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		result, duration, err := runPipeline()
		if err != nil {
			contract.LogFatal("Cannot analyze track", err)
		}
		if err := outwriter.WriteWindResult(result.Wind, cfg, duration); err != nil {
			contract.LogFatal("Cannot write wind result", err)
		}
	},
}
