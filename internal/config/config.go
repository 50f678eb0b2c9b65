package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/shavzak/scheduler/pkg/core/allocator"
)

// Defaults applied to fields left out of the config file
var (
	DefaultDaysOfWeek       = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	DefaultShiftTypes       = []string{"Day", "Night"}
	DefaultMaxShiftsPerWeek = 3
	DefaultWeekStartRule    = "FREQ=WEEKLY;BYDAY=SU"
)

// PreferenceSheet locates the Google Sheet preferences can be imported from
type PreferenceSheet struct {
	SpreadsheetID string `yaml:"spreadsheetID" validate:"required"`
	Tab           string `yaml:"tab" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL      string           `yaml:"databaseURL" validate:"required"`
	DaysOfWeek       []string         `yaml:"daysOfWeek,omitempty" validate:"required,unique,dive,required,excludes=_"`
	ShiftTypes       []string         `yaml:"shiftTypes,omitempty" validate:"required,unique,dive,required,excludes=_"`
	MaxShiftsPerWeek int              `yaml:"maxShiftsPerWeek,omitempty" validate:"min=1"`
	WeekStartRule    string           `yaml:"weekStartRule,omitempty" validate:"required"`
	PreferenceSheet  *PreferenceSheet `yaml:"preferenceSheet,omitempty"`

	// PublishSheetID is the spreadsheet finalised weeks are published to, if any
	PublishSheetID string `yaml:"publishSheetID,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Week returns the slot grid described by the configuration
func (c *Config) Week() allocator.Week {
	return allocator.Week{
		Days:       c.DaysOfWeek,
		ShiftTypes: c.ShiftTypes,
	}
}

// Load loads and validates the configuration from shavzak_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration for an environment.
// For example, env="test" will look for "shavzak_config.test.yaml"
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findFile(envFileName("shavzak_config", ".yaml", env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyDefaults fills every optional field that was left empty
func ApplyDefaults(cfg *Config) {
	if len(cfg.DaysOfWeek) == 0 {
		cfg.DaysOfWeek = append([]string(nil), DefaultDaysOfWeek...)
	}
	if len(cfg.ShiftTypes) == 0 {
		cfg.ShiftTypes = append([]string(nil), DefaultShiftTypes...)
	}
	if cfg.MaxShiftsPerWeek == 0 {
		cfg.MaxShiftsPerWeek = DefaultMaxShiftsPerWeek
	}
	if cfg.WeekStartRule == "" {
		cfg.WeekStartRule = DefaultWeekStartRule
	}
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := rrule.StrToRRule(cfg.WeekStartRule); err != nil {
		return fmt.Errorf("invalid rrule in weekStartRule: %w", err)
	}

	// Names must also survive the slot grid checks, e.g. no whitespace-only days
	if err := allocator.ValidateWeek(cfg.Week()); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// findFile searches for a file in current directory and home directory
func findFile(fileName string) (string, error) {
	// Check current directory
	if _, err := os.Stat(fileName); err == nil {
		return fileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, fileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", fileName)
}

// envFileName inserts the environment before the extension, e.g. "oauthClient.test.json"
func envFileName(base, ext, env string) string {
	if env == "" {
		return base + ext
	}
	return base + "." + env + ext
}
