package contract

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sailhq/windward/schema"
)

// Default values for configuration.
const (
	DefaultWindowSize       = 5
	DefaultAngleThreshold   = 60.0
	DefaultTimeThreshold    = 15 * time.Second
	DefaultMinTurnDuration  = 10 * time.Second
	DefaultBearingThreshold = 20.0
	DefaultPrecision        = 2
	MaxPrecision            = 4
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	GPXPath string

	WindowSize       int
	AngleThreshold   float64 // Degrees of course change that qualify a turn
	TimeThreshold    time.Duration
	MinTurnDuration  time.Duration
	ExcludeEdges     bool
	ForceWind        *float64 // Forced wind direction, nil when unset
	BearingThreshold float64  // Fallback segmentation threshold, degrees

	Detector       schema.DetectorStrategy
	WindConvention schema.WindConvention
	LabelTurns     bool

	Output      schema.OutputMode
	OutputFile  string
	ChartFile   string
	DBPath      string
	ParquetFile string
	Precision   int

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	GPXPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	WindowSize       int     `mapstructure:"window-size"`
	AngleThreshold   float64 `mapstructure:"angle-threshold"`
	TimeThreshold    string  `mapstructure:"time-threshold"`
	MinTurnDuration  string  `mapstructure:"min-turn-duration"`
	ExcludeEdges     string  `mapstructure:"exclude-edges"`
	Wind             string  `mapstructure:"wind"`
	BearingThreshold float64 `mapstructure:"bearing-threshold"`
	Detector         string  `mapstructure:"detector"`
	WindConvention   string  `mapstructure:"wind-convention"`
	LabelTurns       string  `mapstructure:"label-turns"`
	Output           string  `mapstructure:"output"`
	OutputFile       string  `mapstructure:"output-file"`
	Precision        int     `mapstructure:"precision"`
	Color            string  `mapstructure:"color"`

	// --- Fields from analyzeCmd.Flags() ---
	ChartFile   string `mapstructure:"chart-file"`
	DBPath      string `mapstructure:"db"`
	ParquetFile string `mapstructure:"parquet-file"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.ForceWind != nil {
		wind := *c.ForceWind
		clone.ForceWind = &wind
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processThresholds(cfg, input); err != nil {
		return err
	}
	if err := processWind(cfg, input); err != nil {
		return err
	}
	if err := resolveGPXPath(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-threshold fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.ChartFile = input.ChartFile
	cfg.DBPath = input.DBPath
	cfg.ParquetFile = input.ParquetFile

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// Parse exclude-edges flag
	excludeEdges, err := ParseBoolString(input.ExcludeEdges)
	if err != nil {
		return fmt.Errorf("invalid --exclude-edges value: %w", err)
	}
	cfg.ExcludeEdges = excludeEdges

	// Parse label-turns flag
	labelTurns, err := ParseBoolString(input.LabelTurns)
	if err != nil {
		return fmt.Errorf("invalid --label-turns value: %w", err)
	}
	cfg.LabelTurns = labelTurns

	// --- 1. Detector Validation ---
	cfg.Detector = schema.DetectorStrategy(strings.ToLower(input.Detector))
	if _, ok := schema.ValidDetectorStrategies[cfg.Detector]; !ok {
		return fmt.Errorf("invalid detector '%s'. must be two-phase, single-phase", input.Detector)
	}

	// --- 2. Wind Convention Validation ---
	cfg.WindConvention = schema.WindConvention(strings.ToLower(input.WindConvention))
	if _, ok := schema.ValidWindConventions[cfg.WindConvention]; !ok {
		return fmt.Errorf("invalid wind convention '%s'. must be opposite, perpendicular", input.WindConvention)
	}

	// --- 3. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	return nil
}

// processThresholds validates the detection and smoothing parameters.
func processThresholds(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Window Size Validation ---
	if input.WindowSize < 1 {
		return fmt.Errorf("window-size must be at least 1 (received %d)", input.WindowSize)
	}
	cfg.WindowSize = input.WindowSize

	// --- 2. Angle Threshold Validation ---
	if input.AngleThreshold <= 0 || input.AngleThreshold > 180 {
		return fmt.Errorf("angle-threshold must be in (0, 180] degrees (received %.1f)", input.AngleThreshold)
	}
	cfg.AngleThreshold = input.AngleThreshold

	// --- 3. Time Threshold Validation ---
	timeThreshold, err := time.ParseDuration(input.TimeThreshold)
	if err != nil {
		return fmt.Errorf("invalid time-threshold '%s': %w", input.TimeThreshold, err)
	}
	if timeThreshold <= 0 {
		return fmt.Errorf("time-threshold must be positive (received %s)", timeThreshold)
	}
	cfg.TimeThreshold = timeThreshold

	// --- 4. Min Turn Duration Validation ---
	minTurnDuration, err := time.ParseDuration(input.MinTurnDuration)
	if err != nil {
		return fmt.Errorf("invalid min-turn-duration '%s': %w", input.MinTurnDuration, err)
	}
	if minTurnDuration < 0 {
		return fmt.Errorf("min-turn-duration cannot be negative (received %s)", minTurnDuration)
	}
	cfg.MinTurnDuration = minTurnDuration

	// --- 5. Bearing Threshold Validation ---
	if input.BearingThreshold <= 0 || input.BearingThreshold > 180 {
		return fmt.Errorf("bearing-threshold must be in (0, 180] degrees (received %.1f)", input.BearingThreshold)
	}
	cfg.BearingThreshold = input.BearingThreshold

	return nil
}

// processWind parses the optional forced wind direction.
func processWind(cfg *Config, input *ConfigRawInput) error {
	wind := strings.TrimSpace(input.Wind)
	if wind == "" {
		cfg.ForceWind = nil
		return nil
	}

	direction, err := strconv.ParseFloat(wind, 64)
	if err != nil {
		return fmt.Errorf("invalid --wind value '%s': %w", input.Wind, err)
	}
	if direction < 0 || direction >= 360 {
		return fmt.Errorf("--wind must be in [0, 360) degrees (received %.1f)", direction)
	}
	cfg.ForceWind = &direction
	return nil
}

// resolveGPXPath checks that the input GPX file exists and is a regular file.
func resolveGPXPath(cfg *Config, input *ConfigRawInput) error {
	path := strings.TrimSpace(input.GPXPathStr)
	if path == "" {
		return fmt.Errorf("a GPX file path is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("GPX file not found: %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("GPX path is a directory, expected a file: %s", path)
	}

	cfg.GPXPath = path
	return nil
}
