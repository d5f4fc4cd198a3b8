// Package selftest verifies a finished installation by invoking the launcher.
// The result is advisory only and never changes the installer's exit status.
package selftest

import (
	"os/exec"
	"strings"

	"github.com/strucureo/inity-setup/src/internal/constants"
	"github.com/strucureo/inity-setup/src/internal/ui"
)

// Run invokes the launcher with a version query and reports the outcome.
// The bare command name is preferred, proving the PATH registration took
// effect in this process; the absolute path is the fallback.
func Run(launcherPath string) {
	target := launcherPath
	if resolved, err := exec.LookPath(constants.LauncherName); err == nil {
		target = resolved
	}

	ui.Progress("Running self-test: %s --version", target)

	cmd := exec.Command(target, "--version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		ui.Warning("Self-test failed: %v", err)
		if len(output) > 0 {
			ui.Warning("%s", strings.TrimSpace(string(output)))
		}
		ui.Info("The installation may still work in a new terminal session")
		return
	}

	ui.Success("Self-test passed: %s", strings.TrimSpace(string(output)))
}
