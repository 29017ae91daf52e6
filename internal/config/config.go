package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/cleaner.log"`
}

// PathsConfig contains the directory layout. Relative entries are resolved
// against the executable directory by GetPaths.
type PathsConfig struct {
	InputDir   string `yaml:"input_dir" envconfig:"INPUT_DIR" default:"data/input_csv"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"data/reports"`
	CleanedDir string `yaml:"cleaned_dir" envconfig:"CLEANED_DIR" default:"data/cleaned_csv"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// Load loads configuration from environment variables (prefix CSVCLEAN) and,
// if present, a csvclean.yml file next to the working directory. Environment
// values take precedence over file values.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("CSVCLEAN", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if data, err := os.ReadFile("csvclean.yml"); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parse csvclean.yml: %w", err)
		}
		cfg = merge(fileCfg, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// merge fills zero-valued env fields from the file config (env wins).
func merge(fileCfg, envCfg Config) Config {
	if envCfg.Logging.Level == "" {
		envCfg.Logging.Level = fileCfg.Logging.Level
	}
	if envCfg.Logging.Format == "" {
		envCfg.Logging.Format = fileCfg.Logging.Format
	}
	if envCfg.Logging.Output == "" {
		envCfg.Logging.Output = fileCfg.Logging.Output
	}
	if envCfg.Logging.FilePath == "" {
		envCfg.Logging.FilePath = fileCfg.Logging.FilePath
	}
	if envCfg.Paths.InputDir == "" {
		envCfg.Paths.InputDir = fileCfg.Paths.InputDir
	}
	if envCfg.Paths.ReportsDir == "" {
		envCfg.Paths.ReportsDir = fileCfg.Paths.ReportsDir
	}
	if envCfg.Paths.CleanedDir == "" {
		envCfg.Paths.CleanedDir = fileCfg.Paths.CleanedDir
	}
	if envCfg.Paths.LogsDir == "" {
		envCfg.Paths.LogsDir = fileCfg.Paths.LogsDir
	}
	return envCfg
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}
	switch strings.ToLower(c.Logging.Output) {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid logging output: %s", c.Logging.Output)
	}
	return nil
}
