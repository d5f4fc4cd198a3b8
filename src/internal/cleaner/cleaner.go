// Package cleaner removes artifacts previous runs of this tool created.
//
// Every removal is best-effort: failures are logged and never abort the run,
// so a partially-cleaned prior state is acceptable and repaired by the next
// install.
package cleaner

import (
	"os"
	"os/exec"

	"github.com/strucureo/inity-setup/src/internal/constants"
	"github.com/strucureo/inity-setup/src/internal/launcher"
	"github.com/strucureo/inity-setup/src/internal/path"
	"github.com/strucureo/inity-setup/src/internal/ui"
)

// RemovePrior clears every artifact an earlier install may have left:
// the isolated environment, launchers in all candidate install directories,
// the pip registration of the application, and our own PATH entries.
// pythonPath may be empty when no interpreter was detected.
func RemovePrior(envDir string, binDirs []string, pythonPath string) {
	RemoveEnvironment(envDir)
	RemoveLaunchers(binDirs)
	if pythonPath != "" {
		UninstallPackage(pythonPath)
	}
	RemovePathEntries(binDirs)
}

// RemoveEnvironment deletes the isolated environment directory
func RemoveEnvironment(envDir string) {
	if _, err := os.Stat(envDir); os.IsNotExist(err) {
		return
	}

	if err := os.RemoveAll(envDir); err != nil {
		ui.Warning("Could not remove previous environment %s: %v", envDir, err)
		return
	}

	ui.Debug("removed previous environment %s", envDir)
}

// RemoveLaunchers deletes the launcher from every given directory
func RemoveLaunchers(binDirs []string) {
	for _, dir := range binDirs {
		if err := launcher.Remove(dir); err != nil {
			ui.Warning("Could not remove previous launcher in %s: %v", dir, err)
		}
	}
}

// UninstallPackage removes the application from the interpreter's package
// index, covering installs made outside an isolated environment
func UninstallPackage(pythonPath string) {
	cmd := exec.Command(pythonPath, "-m", "pip", "uninstall", "-y", constants.PackageName)
	output, err := cmd.CombinedOutput()
	if err != nil {
		// Usually just "not installed" or pip being absent; either is fine
		ui.Debug("pip uninstall %s: %v (%s)", constants.PackageName, err, output)
		return
	}

	ui.Debug("uninstalled stray %s package from %s", constants.PackageName, pythonPath)
}

// RemovePathEntries strips the PATH entries this tool added for its install
// directories. Entries for the interpreter itself are never touched.
func RemovePathEntries(binDirs []string) {
	for _, dir := range binDirs {
		if err := path.RemoveFromPath(dir); err != nil {
			ui.Warning("Could not remove PATH entry for %s: %v", dir, err)
		}
	}
}
