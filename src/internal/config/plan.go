package config

import (
	"path/filepath"
	"runtime"

	"github.com/strucureo/inity-setup/src/internal/constants"
)

// Plan captures every choice the detection and registration steps make.
// It is built once, before any artifact is created, and passed by value to
// the environment builder and launcher writer so later steps never re-read
// ambient state.
type Plan struct {
	PythonPath    string // Absolute path to the chosen interpreter
	PythonVersion string // Self-reported version (e.g., "3.11.4")
	PythonSource  string // How the interpreter was found: "path", "scan", "package-manager"
	EnvDir        string // Isolated environment directory
	BinDir        string // Chosen launcher install directory
}

// LauncherPath returns the full path of the launcher artifact for this plan
func (p Plan) LauncherPath() string {
	name := constants.LauncherName
	if runtime.GOOS == constants.OSWindows {
		name += constants.ExtCmd
	}
	return filepath.Join(p.BinDir, name)
}

// EnvPython returns the path of the interpreter inside the isolated environment
func (p Plan) EnvPython() string {
	if runtime.GOOS == constants.OSWindows {
		return filepath.Join(p.EnvDir, "Scripts", "python.exe")
	}
	return filepath.Join(p.EnvDir, "bin", "python")
}
