package python

import (
	"os"
	"path/filepath"
	goruntime "runtime"

	"github.com/strucureo/inity-setup/src/internal/constants"
)

// WellKnownDirs returns glob patterns for the directories where Python
// installations commonly live on this platform: vendor default paths first,
// then user-local package-manager install locations.
func WellKnownDirs() []string {
	home, _ := os.UserHomeDir()

	switch goruntime.GOOS {
	case constants.OSWindows:
		patterns := []string{
			`C:\Python3*`,
			`C:\Program Files\Python3*`,
		}
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			patterns = append(patterns,
				filepath.Join(localAppData, "Programs", "Python", "Python3*"))
		}
		if home != "" {
			patterns = append(patterns,
				filepath.Join(home, "scoop", "apps", "python", "current"))
		}
		return patterns

	case constants.OSDarwin:
		patterns := []string{
			"/usr/local/bin",
			"/opt/homebrew/bin",
			"/usr/local/opt/python@3.*/bin",
			"/opt/homebrew/opt/python@3.*/bin",
			"/Library/Frameworks/Python.framework/Versions/3.*/bin",
		}
		if home != "" {
			patterns = append(patterns,
				filepath.Join(home, ".pyenv", "versions", "*", "bin"))
		}
		return patterns

	default: // linux and other unixes
		patterns := []string{
			"/usr/bin",
			"/usr/local/bin",
			"/opt/python*/bin",
		}
		if home != "" {
			patterns = append(patterns,
				filepath.Join(home, ".pyenv", "versions", "*", "bin"),
				filepath.Join(home, ".local", "bin"))
		}
		return patterns
	}
}
