package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/internal/outwriter"
	"github.com/sailhq/windward/internal/resultstore"
)

// runsRunID selects one run whose stored segment metrics should be shown
// instead of the run history.
var runsRunID int64

// runsCmd lists the analysis runs recorded in a tracking database.
var runsCmd = &cobra.Command{
	Use:   "runs <db-file>",
	Short: "List recorded analysis runs.",
	Long: `List the analysis runs recorded with analyze --db.

Examples:
  # Show the run history of a season database
  windward runs season.db

  # Show the stored segment metrics of run 3
  windward runs season.db --run-id 3`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		store, err := resultstore.Open(args[0])
		if err != nil {
			contract.LogFatal("Cannot open run database", err)
		}
		defer func() { _ = store.Close() }()

		if runsRunID > 0 {
			metrics, err := store.GetSegmentMetrics(runsRunID)
			if err != nil {
				contract.LogFatal("Cannot read segment metrics", err)
			}
			if err := outwriter.WriteRunMetrics(runsRunID, metrics, contract.DefaultPrecision, os.Stdout); err != nil {
				contract.LogFatal("Cannot write segment metrics", err)
			}
			return
		}

		runs, err := store.GetAllRuns()
		if err != nil {
			contract.LogFatal("Cannot read run history", err)
		}
		if err := outwriter.WriteRunHistory(runs, contract.DefaultPrecision, os.Stdout); err != nil {
			contract.LogFatal("Cannot write run history", err)
		}
	},
}
