package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "resumewizard.yaml"

type Config struct {
	Wizard  WizardConfig  `yaml:"wizard"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

type WizardConfig struct {
	DefaultTemplate string `yaml:"default_template" validate:"oneof=modern compact"`
	// BulletDescriptions enables the bullet transform on experience
	// descriptions.
	BulletDescriptions bool `yaml:"bullet_descriptions"`
}

type ExportConfig struct {
	OutputDir  string `yaml:"output_dir"`
	ChromePath string `yaml:"chrome_path"`
	Paper      string `yaml:"paper" validate:"oneof=letter a4"`
	Timeout    string `yaml:"timeout"`
	Attempts   int    `yaml:"attempts" validate:"min=1,max=10"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error off"`
	// File receives the interactive session's log. Empty disables logging
	// there, since the terminal belongs to the UI.
	File string `yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Wizard: WizardConfig{
			DefaultTemplate:    "modern",
			BulletDescriptions: true,
		},
		Export: ExportConfig{
			OutputDir: ".",
			Paper:     "letter",
			Timeout:   "60s",
			Attempts:  3,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. A missing file is not an error. A .env file in the working
// directory is loaded first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", filepath.Base(path), err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("RESUME_OUTPUT_DIR"); dir != "" {
		c.Export.OutputDir = dir
	}
	if p := os.Getenv("CHROME_PATH"); p != "" {
		c.Export.ChromePath = p
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		c.Logging.Level = lvl
	}
	if f := os.Getenv("RESUME_LOG_FILE"); f != "" {
		c.Logging.File = f
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.ParseDuration(c.Export.Timeout); c.Export.Timeout != "" && err != nil {
		return fmt.Errorf("invalid config: export.timeout: %w", err)
	}
	return nil
}

// GetExportTimeout returns the per-attempt PDF timeout.
func (c *Config) GetExportTimeout() time.Duration {
	d, err := time.ParseDuration(c.Export.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}
