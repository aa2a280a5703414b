package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sailhq/windward/core"
	"github.com/sailhq/windward/internal/contract"
	"github.com/sailhq/windward/internal/gpx"
	"github.com/sailhq/windward/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "windward",
	Short:              "Infer wind direction and segment sail-racing GPX tracks.",
	Long:               `Windward reads a GPX track, detects tacks and gybes, estimates the true wind direction from the tacking pattern, and breaks the track into straight legs and turns.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".windward") // Name of config file (without extension)
		viper.SetConfigType("yaml")      // We'll use YAML format
		viper.AddConfigPath(".")         // Look in the current directory
		viper.AddConfigPath("$HOME")     // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("WINDWARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("window-size", contract.DefaultWindowSize)
	viper.SetDefault("angle-threshold", contract.DefaultAngleThreshold)
	viper.SetDefault("time-threshold", contract.DefaultTimeThreshold.String())
	viper.SetDefault("min-turn-duration", contract.DefaultMinTurnDuration.String())
	viper.SetDefault("exclude-edges", "yes")
	viper.SetDefault("wind", "")
	viper.SetDefault("bearing-threshold", contract.DefaultBearingThreshold)
	viper.SetDefault("detector", string(schema.TwoPhaseDetector))
	viper.SetDefault("wind-convention", string(schema.OppositeAxis))
	viper.SetDefault("label-turns", "yes")
	viper.SetDefault("output", string(schema.TextOut))
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	if len(args) == 1 {
		input.GPXPathStr = args[0]
	}

	// 4. Run all validation and complex parsing.
	// This function now populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	contract.ApplyColorPreference(cfg.UseColors)
	return nil
}

// runPipeline parses the configured GPX file and runs the full analysis.
func runPipeline() (*schema.AnalysisResult, time.Duration, error) {
	start := time.Now()

	track, err := gpx.ParseFile(cfg.GPXPath)
	if err != nil {
		return nil, 0, err
	}
	if track.Skipped > 0 {
		contract.LogWarn("Parsing GPX track", fmt.Errorf("dropped %d points with missing or non-increasing timestamps", track.Skipped))
	}

	result := core.Analyze(cfg, track.Points)
	return result, time.Since(start), nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
