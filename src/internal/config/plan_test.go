package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestPlanPaths(t *testing.T) {
	plan := Plan{
		PythonPath:    "/usr/bin/python3",
		PythonVersion: "3.11.4",
		PythonSource:  "path",
		EnvDir:        filepath.Join("home", ".inity", "env"),
		BinDir:        filepath.Join("usr", "local", "bin"),
	}

	t.Run("LauncherPath", func(t *testing.T) {
		want := filepath.Join(plan.BinDir, "inity")
		if runtime.GOOS == "windows" {
			want = filepath.Join(plan.BinDir, "inity.cmd")
		}

		if got := plan.LauncherPath(); got != want {
			t.Errorf("LauncherPath() = %q, want %q", got, want)
		}
	})

	t.Run("EnvPython", func(t *testing.T) {
		want := filepath.Join(plan.EnvDir, "bin", "python")
		if runtime.GOOS == "windows" {
			want = filepath.Join(plan.EnvDir, "Scripts", "python.exe")
		}

		if got := plan.EnvPython(); got != want {
			t.Errorf("EnvPython() = %q, want %q", got, want)
		}
	})
}
