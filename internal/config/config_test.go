package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "data/input_csv", cfg.Paths.InputDir)
	assert.Equal(t, "data/reports", cfg.Paths.ReportsDir)
	assert.Equal(t, "data/cleaned_csv", cfg.Paths.CleanedDir)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CSVCLEAN_LOGGING_LEVEL", "debug")
	t.Setenv("CSVCLEAN_PATHS_INPUT_DIR", "/srv/in")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/srv/in", cfg.Paths.InputDir)
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	t.Setenv("CSVCLEAN_LOGGING_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		logging LoggingConfig
		wantErr bool
	}{
		{"valid", LoggingConfig{Level: "info", Format: "json", Output: "console"}, false},
		{"text format", LoggingConfig{Level: "warn", Format: "text", Output: "both"}, false},
		{"bad format", LoggingConfig{Level: "info", Format: "xml", Output: "console"}, true},
		{"bad output", LoggingConfig{Level: "info", Format: "json", Output: "syslog"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Logging: tt.logging}
			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetPathsResolvesRelative(t *testing.T) {
	paths, err := GetPaths(PathsConfig{
		InputDir:   "data/in",
		ReportsDir: "/abs/reports",
		CleanedDir: "data/out",
		LogsDir:    "logs",
	})
	require.NoError(t, err)

	assert.Equal(t, "/abs/reports", paths.ReportsDir)
	assert.NotEmpty(t, paths.ExecutableDir)
	assert.Contains(t, paths.InputDir, paths.ExecutableDir)
	assert.Contains(t, paths.GetLogPath("x.log"), paths.LogsDir)
}
