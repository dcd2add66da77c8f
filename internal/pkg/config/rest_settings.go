package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// CleaningSettings holds the default parameters applied by the cleaning service
// when a request does not override them.
type CleaningSettings struct {
	MissingThreshold float64 `yaml:"missing_threshold" validate:"gte=0,lte=1"`
	ClipOutliers     bool    `yaml:"clip_outliers"`
	LowerPercentile  float64 `yaml:"lower_percentile" validate:"gte=0,lte=100"`
	UpperPercentile  float64 `yaml:"upper_percentile" validate:"gte=0,lte=100"`
}

// Validate checks that all fields in CleaningSettings are valid
func (s *CleaningSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CleaningSettings: %w", err)
	}
	if s.LowerPercentile >= s.UpperPercentile {
		return fmt.Errorf("lower percentile must be below upper percentile")
	}

	return nil
}

// RestConfig aggregates all settings required by the REST API binary
type RestConfig struct {
	Port     string           `yaml:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `yaml:"logger"`
	Database DatabaseSettings `yaml:"database"`
	Cleaning CleaningSettings `yaml:"cleaning"`
}

// DefaultCleaningSettings returns the cleaning defaults used when no
// configuration file overrides them. The 0.05 missing threshold matches the
// station data quality guideline for the measurement campaign.
func DefaultCleaningSettings() CleaningSettings {
	return CleaningSettings{
		MissingThreshold: 0.05,
		ClipOutliers:     false,
		LowerPercentile:  1,
		UpperPercentile:  99,
	}
}

// InitializeRestConfig reads, parses and validates the REST API configuration file
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	cfg := &RestConfig{
		Cleaning: DefaultCleaningSettings(),
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks all nested settings of the RestConfig
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Cleaning.Validate(); err != nil {
		return err
	}

	return nil
}
