package corpus

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// configMarker identifies the repository root when git is unavailable.
var configMarker = filepath.Join("pipeline", "config")

// FindRoot locates the repository root directory. It asks git first, then
// walks upward from the working directory looking for the pipeline/config
// marker, then falls back to the working directory itself. The result is
// resolved once per run and passed explicitly to every component.
func FindRoot() string {
	if out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output(); err == nil {
		if root := strings.TrimSpace(string(out)); root != "" {
			return root
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	for dir := cwd; ; {
		if isDir(filepath.Join(dir, configMarker)) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return cwd
}
