package files

import (
	"fmt"
	"log/slog"
	"os"
)

// EnsureDirectories creates every given directory, including parents.
func EnsureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
		slog.Debug("ensured directory", slog.String("dir", dir))
	}
	return nil
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
