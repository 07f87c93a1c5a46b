package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Root markers, in lookup order.
const (
	ConfigFile = "cellar.yaml"
	MarkerDir  = ".cellar"
)

// FindRoot walks upwards from startDir looking for a journal root, marked by
// a cellar.yaml file or a .cellar directory. It returns the absolute root.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, ConfigFile) || hasFile(dir, MarkerDir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("root not found")
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
