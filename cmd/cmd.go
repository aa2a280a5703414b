// Package cmd defines the command-line interface for windward.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(windCmd)
	rootCmd.AddCommand(turnsCmd)
	rootCmd.AddCommand(performanceCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("window-size", "w", contract.DefaultWindowSize, "Moving average window for course smoothing (points)")
	rootCmd.PersistentFlags().Float64P("angle-threshold", "a", contract.DefaultAngleThreshold, "Course change in degrees that qualifies a turn")
	rootCmd.PersistentFlags().String("time-threshold", contract.DefaultTimeThreshold.String(), "Maximum duration of a turn (e.g. 15s)")
	rootCmd.PersistentFlags().String("min-turn-duration", contract.DefaultMinTurnDuration.String(), "Minimum turn duration used for wind estimation (e.g. 10s)")
	rootCmd.PersistentFlags().String("exclude-edges", "yes", "Skip the first and last turn when estimating wind (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("wind", "", "Force the wind direction in degrees [0,360) instead of estimating it")
	rootCmd.PersistentFlags().Float64("bearing-threshold", contract.DefaultBearingThreshold, "Bearing deviation for fallback segmentation, degrees")
	rootCmd.PersistentFlags().String("detector", string(schema.TwoPhaseDetector), "Turn detection strategy: two-phase or single-phase")
	rootCmd.PersistentFlags().String("wind-convention", string(schema.OppositeAxis), "Wind derivation from tacking axis: opposite or perpendicular")
	rootCmd.PersistentFlags().String("label-turns", "yes", "Label turn segments as Turning instead of a point of sail (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of analyzeCmd to Viper
	analyzeCmd.Flags().String("chart-file", "", "Optional path to write an HTML chart page to")
	analyzeCmd.Flags().String("db", "", "Optional SQLite database path to record the run in")
	analyzeCmd.Flags().String("parquet-file", "", "Optional path to export per-point performance rows as Parquet")
	if err := viper.BindPFlags(analyzeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding analyze flags", err)
	}

	// runs reads the tracking database directly, bypassing the GPX config
	runsCmd.Flags().Int64Var(&runsRunID, "run-id", 0, "Show the stored segment metrics of one run instead of the history")
}
