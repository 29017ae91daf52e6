package files

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// FindCSVFiles recursively walks root and returns the paths of all files with
// a case-insensitive .csv extension, in walk order. Directories that cannot
// be read are skipped rather than failing the walk.
func FindCSVFiles(root string) ([]string, error) {
	var found []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d == nil {
				// The root itself is unreadable.
				return err
			}
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(d.Name()), ".csv") {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return found, nil
}
