package platform

import (
	"fmt"
	"path/filepath"
)

// FindVault recursively looks upwards from startDir for a directory that
// already holds dashboard documents (any "akhet_*.json" file). It lets the
// CLI run from inside a vault without an explicit --vault flag.
func FindVault(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasDocuments(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no vault found above %s", startDir)
}

func hasDocuments(dir string) bool {
	matches, err := filepath.Glob(filepath.Join(dir, "akhet_*.json"))
	return err == nil && len(matches) > 0
}
