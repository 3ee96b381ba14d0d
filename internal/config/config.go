package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"metabolic-report/internal/analysis"
)

// Config represents the application configuration
type Config struct {
	Patient PatientConfig `json:"patient"`
	Scoring ScoringConfig `json:"scoring"`
	Logging LoggingConfig `json:"logging"`
	Display DisplayConfig `json:"display"`
}

// PatientConfig holds defaults applied when the extraction omits them
type PatientConfig struct {
	ActivityLevel string `json:"activity_level"`
}

// ScoringConfig overrides the engine's constants. Zero values keep the
// calibrated defaults.
type ScoringConfig struct {
	ActivityFactors      map[string]float64 `json:"activity_factors,omitempty"`
	RMRRatioLow          float64            `json:"rmr_ratio_low,omitempty"`
	RMRRatioHigh         float64            `json:"rmr_ratio_high,omitempty"`
	TypicalRER           float64            `json:"typical_rer,omitempty"`
	TypicalLungUtilScore float64            `json:"typical_lung_util_score,omitempty"`
	TypicalVEVCO2        float64            `json:"typical_ve_vco2,omitempty"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `json:"level"`
	File   string `json:"file"`
	Stdout bool   `json:"stdout"`
	JSON   bool   `json:"json"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	PageSize   int `json:"page_size"`
	ChartWidth int `json:"chart_width"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

var validLogLevels = []string{"trace", "debug", "info", "warn", "error", "fatal"}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Patient: PatientConfig{
			ActivityLevel: string(analysis.ActivityModerate),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Display: DisplayConfig{
			PageSize:   15,
			ChartWidth: 50,
		},
	}
}

// Load reads the configuration from ~/.metabolic/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path and fills in defaults
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Patient.ActivityLevel == "" {
		cfg.Patient.ActivityLevel = defaults.Patient.ActivityLevel
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	if cfg.Display.PageSize == 0 {
		cfg.Display.PageSize = defaults.Display.PageSize
	}
	if cfg.Display.ChartWidth == 0 {
		cfg.Display.ChartWidth = defaults.Display.ChartWidth
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.metabolic/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(cfg, path)
}

// SaveFile writes the configuration to path
func SaveFile(cfg *Config, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	example.Logging.File = filepath.Join(filepath.Dir(path), "metabolic.log")
	return SaveFile(&example, path)
}

// Validate checks the config for values the engine can't use
func (c *Config) Validate() error {
	if c.Patient.ActivityLevel != "" {
		if _, ok := analysis.ParseActivityLevel(c.Patient.ActivityLevel); !ok {
			return fmt.Errorf("patient.activity_level %q is not one of %s", c.Patient.ActivityLevel, activityLevelList())
		}
	}

	for level, factor := range c.Scoring.ActivityFactors {
		if _, ok := analysis.ParseActivityLevel(level); !ok {
			return fmt.Errorf("scoring.activity_factors: unknown level %q", level)
		}
		if factor <= 0 {
			return fmt.Errorf("scoring.activity_factors.%s must be positive, got %v", level, factor)
		}
	}

	low, high := c.Scoring.RMRRatioLow, c.Scoring.RMRRatioHigh
	if low < 0 || high < 0 {
		return errors.New("scoring.rmr_ratio_low and rmr_ratio_high must not be negative")
	}
	if low > 0 && high > 0 && low >= high {
		return fmt.Errorf("scoring.rmr_ratio_low (%v) must be less than rmr_ratio_high (%v)", low, high)
	}

	if rer := c.Scoring.TypicalRER; rer != 0 && (rer < 0.7 || rer > 1.0) {
		return fmt.Errorf("scoring.typical_rer must be between 0.70 and 1.00, got %v", rer)
	}
	if s := c.Scoring.TypicalLungUtilScore; s < 0 || s > 100 {
		return fmt.Errorf("scoring.typical_lung_util_score must be between 0 and 100, got %v", s)
	}
	if c.Scoring.TypicalVEVCO2 < 0 {
		return fmt.Errorf("scoring.typical_ve_vco2 must not be negative, got %v", c.Scoring.TypicalVEVCO2)
	}

	if c.Logging.Level != "" && !isValidLogLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of %s, got %q", strings.Join(validLogLevels, ", "), c.Logging.Level)
	}

	if c.Display.PageSize < 0 {
		return fmt.Errorf("display.page_size must not be negative, got %d", c.Display.PageSize)
	}

	return nil
}

// Tables builds the engine constants, applying any overrides
func (c *Config) Tables() analysis.Tables {
	t := analysis.DefaultTables()
	t.DefaultActivity = c.Patient.DefaultActivity()

	s := c.Scoring

	for level, factor := range s.ActivityFactors {
		if l, ok := analysis.ParseActivityLevel(level); ok && factor > 0 {
			t.ActivityFactors[l] = factor
		}
	}
	if s.RMRRatioLow > 0 {
		t.RMRRatioLow = s.RMRRatioLow
	}
	if s.RMRRatioHigh > 0 {
		t.RMRRatioHigh = s.RMRRatioHigh
	}
	if s.TypicalRER > 0 {
		t.TypicalRER = s.TypicalRER
	}
	if s.TypicalLungUtilScore > 0 {
		t.TypicalLungUtilScore = s.TypicalLungUtilScore
	}
	if s.TypicalVEVCO2 > 0 {
		t.TypicalVEVCO2 = s.TypicalVEVCO2
	}

	return t
}

// DefaultActivity returns the configured fallback activity level
func (p PatientConfig) DefaultActivity() analysis.ActivityLevel {
	level, ok := analysis.ParseActivityLevel(p.ActivityLevel)
	if !ok {
		return analysis.ActivityModerate
	}
	return level
}

func isValidLogLevel(level string) bool {
	for _, l := range validLogLevels {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}

func activityLevelList() string {
	names := make([]string, len(analysis.ActivityLevels))
	for i, l := range analysis.ActivityLevels {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".metabolic"), nil
}
