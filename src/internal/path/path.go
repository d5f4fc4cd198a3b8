// Package path provides utilities for PATH environment variable manipulation
// and install-directory selection
package path

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Marker tags every line this tool appends to a shell config file, so
// uninstall can find and remove exactly what install added.
const Marker = "# Added by inity-setup"

// IsInPath checks if a directory is in the system PATH
func IsInPath(dir string) bool {
	pathEnv := os.Getenv("PATH")

	// Get the path separator for this OS
	separator := ":"
	if runtime.GOOS == "windows" {
		separator = ";"
	}

	// Split PATH into individual directories
	paths := strings.Split(pathEnv, separator)

	// Normalize the directory path for comparison
	dir = filepath.Clean(dir)

	for _, p := range paths {
		p = filepath.Clean(p)
		if p == dir {
			return true
		}
	}

	return false
}

// PrependProcessPath puts a directory at the front of the current process's
// PATH so commands installed this run resolve without a new session
func PrependProcessPath(dir string) error {
	if IsInPath(dir) {
		return nil
	}
	return os.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}
