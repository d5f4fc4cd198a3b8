package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/strucureo/inity-setup/src/internal/launcher"
	"github.com/strucureo/inity-setup/src/internal/python"
)

func TestBestCompatible(t *testing.T) {
	v := func(raw string, major, minor, patch int) python.Version {
		return python.Version{Raw: raw, Major: major, Minor: minor, Patch: patch}
	}

	tests := []struct {
		name       string
		candidates []python.Candidate
		wantPath   string
		wantFound  bool
	}{
		{
			name: "Highest compatible wins",
			candidates: []python.Candidate{
				{Path: "/a", Version: v("3.9.0", 3, 9, 0)},
				{Path: "/b", Version: v("3.12.1", 3, 12, 1)},
				{Path: "/c", Version: v("3.10.0", 3, 10, 0)},
			},
			wantPath:  "/b",
			wantFound: true,
		},
		{
			name: "Below-floor candidates are ignored",
			candidates: []python.Candidate{
				{Path: "/old", Version: v("2.7.18", 2, 7, 18)},
				{Path: "/new", Version: v("3.8.0", 3, 8, 0)},
			},
			wantPath:  "/new",
			wantFound: true,
		},
		{
			name: "Only incompatible candidates",
			candidates: []python.Candidate{
				{Path: "/old", Version: v("3.7.9", 3, 7, 9)},
			},
			wantFound: false,
		},
		{
			name:       "No candidates at all",
			candidates: nil,
			wantFound:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := bestCompatible(tt.candidates)

			if found != tt.wantFound {
				t.Fatalf("bestCompatible() found = %v, want %v", found, tt.wantFound)
			}
			if found && got.Path != tt.wantPath {
				t.Errorf("bestCompatible() = %s, want %s", got.Path, tt.wantPath)
			}
		})
	}
}

func TestLauncherExists(t *testing.T) {
	withLauncher := t.TempDir()
	empty := t.TempDir()

	launcherPath := filepath.Join(withLauncher, launcher.Name())
	if err := os.WriteFile(launcherPath, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		binDirs []string
		want    bool
	}{
		{"Launcher in first dir", []string{withLauncher, empty}, true},
		{"Launcher in later dir", []string{empty, withLauncher}, true},
		{"No launcher anywhere", []string{empty}, false},
		{"No directories", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := launcherExists(tt.binDirs); got != tt.want {
				t.Errorf("launcherExists(%v) = %v, want %v", tt.binDirs, got, tt.want)
			}
		})
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "regular-file")
	if err := os.WriteFile(file, []byte{}, 0644); err != nil {
		t.Fatal(err)
	}

	if !dirExists(dir) {
		t.Errorf("dirExists(%q) = false, want true", dir)
	}
	if dirExists(file) {
		t.Errorf("dirExists(%q) = true for a regular file, want false", file)
	}
	if dirExists(filepath.Join(dir, "missing")) {
		t.Error("dirExists() = true for a missing path, want false")
	}
}
