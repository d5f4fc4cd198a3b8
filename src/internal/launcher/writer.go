// Package launcher writes the tiny executable users invoke by name.
//
// The launcher re-enters the isolated environment and forwards all arguments
// to the application's entry point unchanged. It carries a liveness check so
// a removed or broken environment produces a remediation message instead of
// a raw "file not found".
package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"

	"github.com/strucureo/inity-setup/src/internal/config"
	"github.com/strucureo/inity-setup/src/internal/constants"
	"github.com/strucureo/inity-setup/src/internal/ui"
)

// Name returns the launcher file name for this platform
func Name() string {
	if goruntime.GOOS == constants.OSWindows {
		return constants.LauncherName + constants.ExtCmd
	}
	return constants.LauncherName
}

// Write creates the launcher described by the plan, overwriting any previous
// launcher unconditionally. Returns the launcher path.
func Write(plan config.Plan) (string, error) {
	launcherPath := plan.LauncherPath()

	var content string
	if goruntime.GOOS == constants.OSWindows {
		content = windowsScript(plan.EnvPython(), entryPoint(plan.EnvDir))
	} else {
		content = unixScript(plan.EnvPython(), entryPoint(plan.EnvDir))
	}

	if err := os.MkdirAll(plan.BinDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create install directory: %w", err)
	}

	if err := os.WriteFile(launcherPath, []byte(content), 0755); err != nil {
		return "", fmt.Errorf("failed to write launcher: %w", err)
	}

	ui.Debug("launcher written to %s", launcherPath)
	return launcherPath, nil
}

// Remove deletes the launcher from a directory. Missing files are not errors.
func Remove(binDir string) error {
	launcherPath := filepath.Join(binDir, Name())
	if err := os.Remove(launcherPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove launcher %s: %w", launcherPath, err)
	}
	return nil
}

// entryPoint returns the console script pip generates for the application
// inside the environment
func entryPoint(envDir string) string {
	if goruntime.GOOS == constants.OSWindows {
		return filepath.Join(envDir, "Scripts", constants.LauncherName+constants.ExtExe)
	}
	return filepath.Join(envDir, "bin", constants.LauncherName)
}

// unixScript renders the POSIX launcher
func unixScript(envPython, entry string) string {
	return fmt.Sprintf(`#!/bin/sh
# inity launcher, written by inity-setup. Overwritten on every install.
ENV_PYTHON="%s"
if [ ! -x "$ENV_PYTHON" ]; then
    echo "inity: environment interpreter missing at $ENV_PYTHON" >&2
    echo "inity: run 'inity-setup install' to repair the installation" >&2
    exit 1
fi
exec "%s" "$@"
`, envPython, entry)
}

// windowsScript renders the .cmd launcher
func windowsScript(envPython, entry string) string {
	return fmt.Sprintf(`@echo off
rem inity launcher, written by inity-setup. Overwritten on every install.
if not exist "%s" (
    echo inity: environment interpreter missing at "%s" 1>&2
    echo inity: run 'inity-setup install' to repair the installation 1>&2
    exit /b 1
)
"%s" %%*
`, envPython, envPython, entry)
}
