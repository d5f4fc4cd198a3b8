package path

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/strucureo/inity-setup/src/internal/constants"
	"github.com/strucureo/inity-setup/src/internal/ui"
)

// CandidateBinDirs returns launcher install directories in priority order:
// a system-wide directory first, then user-scoped fallbacks.
func CandidateBinDirs() []string {
	if runtime.GOOS == constants.OSWindows {
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return []string{filepath.Join(localAppData, "Programs", "inity")}
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		return []string{filepath.Join(home, "inity", "bin")}
	}

	dirs := []string{"/usr/local/bin"}
	home, err := os.UserHomeDir()
	if err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".local", "bin"),
			filepath.Join(home, "bin"))
	}
	return dirs
}

// ChooseBinDir picks the first candidate directory we can write to.
// System directories must already exist; user-scoped directories are created.
func ChooseBinDir() (string, error) {
	return chooseBinDir(CandidateBinDirs())
}

func chooseBinDir(candidates []string) (string, error) {
	for i, dir := range candidates {
		// The first candidate is the system-wide directory; never create it
		if i == 0 && runtime.GOOS != constants.OSWindows {
			if _, err := os.Stat(dir); err != nil {
				continue
			}
		} else {
			if err := os.MkdirAll(dir, 0755); err != nil {
				ui.Debug("cannot create %s: %v", dir, err)
				continue
			}
		}

		if !isWritable(dir) {
			ui.Debug("%s is not writable", dir)
			continue
		}

		return dir, nil
	}

	return "", fmt.Errorf("no writable install directory among %v", candidates)
}

// isWritable probes a directory by creating and removing a temp file
func isWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".inity-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
