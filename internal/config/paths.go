package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all resolved application paths. This is the single source of
// truth for file locations; nothing else in the application assembles paths
// from configuration.
type Paths struct {
	ExecutableDir string
	InputDir      string
	ReportsDir    string
	CleanedDir    string
	LogsDir       string
}

// GetPaths resolves the configured directory layout. Relative directories are
// resolved against the executable's directory so the tool behaves the same
// regardless of the working directory it is launched from.
func GetPaths(cfg PathsConfig) (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("get executable path: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("resolve executable symlinks: %w", err)
	}
	exeDir := filepath.Dir(exe)

	resolve := func(dir string) string {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(exeDir, dir)
	}

	return &Paths{
		ExecutableDir: exeDir,
		InputDir:      resolve(cfg.InputDir),
		ReportsDir:    resolve(cfg.ReportsDir),
		CleanedDir:    resolve(cfg.CleanedDir),
		LogsDir:       resolve(cfg.LogsDir),
	}, nil
}

// EnsureDirectories creates every output directory the application writes to.
// The input directory is deliberately left alone; a missing input directory
// is a user error surfaced at scan time, not something to silently create.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.ReportsDir, p.CleanedDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetLogPath returns the path of a log file inside the logs directory.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
