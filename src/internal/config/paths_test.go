package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	ResetPathsCache()
	defer ResetPathsCache()

	paths := DefaultPaths()

	if paths.Root == "" {
		t.Fatal("DefaultPaths() returned empty root")
	}
	if !strings.Contains(paths.Root, ".inity") {
		t.Errorf("Root = %q, should contain '.inity'", paths.Root)
	}
	if paths.Env != filepath.Join(paths.Root, "env") {
		t.Errorf("Env = %q, want %q", paths.Env, filepath.Join(paths.Root, "env"))
	}
	if paths.Cache != filepath.Join(paths.Root, "cache") {
		t.Errorf("Cache = %q, want %q", paths.Cache, filepath.Join(paths.Root, "cache"))
	}
}

func TestDefaultPathsRootOverride(t *testing.T) {
	original, hadOriginal := os.LookupEnv("INITY_ROOT")
	defer func() {
		if hadOriginal {
			_ = os.Setenv("INITY_ROOT", original)
		} else {
			_ = os.Unsetenv("INITY_ROOT")
		}
		ResetPathsCache()
	}()

	customRoot := t.TempDir()
	_ = os.Setenv("INITY_ROOT", customRoot)
	ResetPathsCache()

	paths := DefaultPaths()

	if paths.Root != customRoot {
		t.Errorf("Root = %q, want INITY_ROOT override %q", paths.Root, customRoot)
	}
	if paths.Env != filepath.Join(customRoot, "env") {
		t.Errorf("Env = %q, want %q", paths.Env, filepath.Join(customRoot, "env"))
	}
}

func TestDefaultPathsCached(t *testing.T) {
	ResetPathsCache()
	defer ResetPathsCache()

	first := DefaultPaths()
	second := DefaultPaths()

	if first != second {
		t.Error("DefaultPaths() returned different instances across calls")
	}
}

func TestEnsureDirectories(t *testing.T) {
	original, hadOriginal := os.LookupEnv("INITY_ROOT")
	defer func() {
		if hadOriginal {
			_ = os.Setenv("INITY_ROOT", original)
		} else {
			_ = os.Unsetenv("INITY_ROOT")
		}
		ResetPathsCache()
	}()

	customRoot := filepath.Join(t.TempDir(), "inity-root")
	_ = os.Setenv("INITY_ROOT", customRoot)
	ResetPathsCache()

	if err := EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() unexpected error: %v", err)
	}

	paths := DefaultPaths()
	for _, dir := range []string{paths.Root, paths.Cache} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("directory %q was not created", dir)
		}
	}

	// The environment directory is created by venv, never by us
	if _, err := os.Stat(paths.Env); !os.IsNotExist(err) {
		t.Errorf("environment directory %q should not be pre-created", paths.Env)
	}
}

func TestManifestOverridePath(t *testing.T) {
	ResetPathsCache()
	defer ResetPathsCache()

	got := ManifestOverridePath()
	want := filepath.Join(DefaultPaths().Root, "manifest.yaml")

	if got != want {
		t.Errorf("ManifestOverridePath() = %q, want %q", got, want)
	}
}
