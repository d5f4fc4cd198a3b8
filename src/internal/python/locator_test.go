package python

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// stubStrategy returns canned candidates, or an error
type stubStrategy struct {
	name       string
	candidates []Candidate
	err        error
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Candidates() ([]Candidate, error) { return s.candidates, s.err }

func mustVersion(t *testing.T, s string) Version {
	t.Helper()
	v, err := ParseVersion(s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestLocatorStrategyOrder(t *testing.T) {
	t.Run("First strategy with a compatible candidate wins", func(t *testing.T) {
		first := &stubStrategy{name: "first", candidates: []Candidate{
			{Path: "/a/python3", Version: mustVersion(t, "3.9.0"), Source: SourcePath},
		}}
		second := &stubStrategy{name: "second", candidates: []Candidate{
			{Path: "/b/python3", Version: mustVersion(t, "3.12.0"), Source: SourceScan},
		}}

		got, err := NewLocator(first, second).Locate()
		if err != nil {
			t.Fatalf("Locate() unexpected error: %v", err)
		}
		if got.Path != "/a/python3" {
			t.Errorf("Locate() = %s, want candidate from first strategy", got.Path)
		}
	})

	t.Run("Below-floor candidates fall through to the next strategy", func(t *testing.T) {
		first := &stubStrategy{name: "first", candidates: []Candidate{
			{Path: "/a/python", Version: mustVersion(t, "2.7.18"), Source: SourcePath},
		}}
		second := &stubStrategy{name: "second", candidates: []Candidate{
			{Path: "/b/python3", Version: mustVersion(t, "3.10.2"), Source: SourceScan},
		}}

		got, err := NewLocator(first, second).Locate()
		if err != nil {
			t.Fatalf("Locate() unexpected error: %v", err)
		}
		if got.Path != "/b/python3" {
			t.Errorf("Locate() = %s, want candidate from second strategy", got.Path)
		}
	})

	t.Run("Failing strategy is skipped", func(t *testing.T) {
		first := &stubStrategy{name: "first", err: fmt.Errorf("broken")}
		second := &stubStrategy{name: "second", candidates: []Candidate{
			{Path: "/b/python3", Version: mustVersion(t, "3.8.0"), Source: SourceScan},
		}}

		got, err := NewLocator(first, second).Locate()
		if err != nil {
			t.Fatalf("Locate() unexpected error: %v", err)
		}
		if got.Path != "/b/python3" {
			t.Errorf("Locate() = %s, want candidate from second strategy", got.Path)
		}
	})

	t.Run("No compatible candidate anywhere is an error", func(t *testing.T) {
		only := &stubStrategy{name: "only", candidates: []Candidate{
			{Path: "/a/python", Version: mustVersion(t, "3.7.9"), Source: SourcePath},
		}}

		if _, err := NewLocator(only).Locate(); err == nil {
			t.Error("Locate() expected error, got nil")
		}
	})
}

func TestBest(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Candidate
		wantPath   string
	}{
		{
			name: "Highest version wins",
			candidates: []Candidate{
				{Path: "/a", Version: Version{Raw: "3.9.1", Major: 3, Minor: 9, Patch: 1}},
				{Path: "/b", Version: Version{Raw: "3.12.0", Major: 3, Minor: 12}},
				{Path: "/c", Version: Version{Raw: "3.10.4", Major: 3, Minor: 10, Patch: 4}},
			},
			wantPath: "/b",
		},
		{
			name: "Earlier candidate wins ties",
			candidates: []Candidate{
				{Path: "/a", Version: Version{Raw: "3.11.0", Major: 3, Minor: 11}},
				{Path: "/b", Version: Version{Raw: "3.11.0", Major: 3, Minor: 11}},
			},
			wantPath: "/a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Best(tt.candidates); got.Path != tt.wantPath {
				t.Errorf("Best() = %s, want %s", got.Path, tt.wantPath)
			}
		})
	}
}

// writeFakeInterpreter drops an executable file named like an interpreter
func writeFakeInterpreter(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLookPathExcluding(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix executable bits")
	}

	ours := t.TempDir()
	system := t.TempDir()
	writeFakeInterpreter(t, ours, "python3")
	want := writeFakeInterpreter(t, system, "python3")

	origPath := os.Getenv("PATH")
	defer os.Setenv("PATH", origPath)
	os.Setenv("PATH", ours+string(os.PathListSeparator)+system)

	t.Run("Excluded directory is skipped", func(t *testing.T) {
		if got := LookPathExcluding("python3", []string{ours}); got != want {
			t.Errorf("LookPathExcluding() = %q, want %q", got, want)
		}
	})

	t.Run("No exclusions resolves first match", func(t *testing.T) {
		wantFirst := filepath.Join(ours, "python3")
		if got := LookPathExcluding("python3", nil); got != wantFirst {
			t.Errorf("LookPathExcluding() = %q, want %q", got, wantFirst)
		}
	})

	t.Run("Missing command resolves to empty", func(t *testing.T) {
		if got := LookPathExcluding("definitely-not-python", nil); got != "" {
			t.Errorf("LookPathExcluding() = %q, want empty", got)
		}
	})
}

func TestScanStrategy(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix executable bits")
	}

	dir := t.TempDir()
	writeFakeInterpreter(t, dir, "python3")

	// Non-executable files must not be treated as interpreters
	if err := os.WriteFile(filepath.Join(dir, "python"), []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	probe := func(execPath string) (Version, bool) {
		return Version{Raw: "3.11.0", Major: 3, Minor: 11}, true
	}

	strategy := NewScanStrategy(probe, []string{dir})
	candidates, err := strategy.Candidates()
	if err != nil {
		t.Fatalf("Candidates() unexpected error: %v", err)
	}

	if len(candidates) != 1 {
		t.Fatalf("Candidates() returned %d candidates, want 1", len(candidates))
	}
	if candidates[0].Path != filepath.Join(dir, "python3") {
		t.Errorf("candidate path = %q, want %q", candidates[0].Path, filepath.Join(dir, "python3"))
	}
	if candidates[0].Source != SourceScan {
		t.Errorf("candidate source = %q, want %q", candidates[0].Source, SourceScan)
	}
}

func TestInstallStrategy(t *testing.T) {
	accept := func(string) bool { return true }
	decline := func(string) bool { return false }

	t.Run("Nil installer is an error", func(t *testing.T) {
		strategy := NewInstallStrategy(nil, accept, nil)
		if _, err := strategy.Candidates(); err == nil {
			t.Error("Candidates() expected error with nil installer")
		}
	})

	t.Run("Declined consent is an error", func(t *testing.T) {
		installer := &stubInstaller{}
		strategy := NewInstallStrategy(installer, decline, nil)
		if _, err := strategy.Candidates(); err == nil {
			t.Error("Candidates() expected error when consent is declined")
		}
		if installer.called {
			t.Error("InstallPython() must not run without consent")
		}
	})

	t.Run("Re-detected candidates are tagged package-manager", func(t *testing.T) {
		redetect := &stubStrategy{name: "lookup", candidates: []Candidate{
			{Path: "/usr/bin/python3", Version: Version{Raw: "3.10.0", Major: 3, Minor: 10}, Source: SourcePath},
		}}
		installer := &stubInstaller{}

		strategy := NewInstallStrategy(installer, accept, []Strategy{redetect})
		candidates, err := strategy.Candidates()
		if err != nil {
			t.Fatalf("Candidates() unexpected error: %v", err)
		}

		if !installer.called {
			t.Error("InstallPython() was not called")
		}
		if len(candidates) != 1 || candidates[0].Source != SourcePackageManager {
			t.Errorf("candidates = %+v, want one tagged %q", candidates, SourcePackageManager)
		}
	})

	t.Run("Failed install is an error", func(t *testing.T) {
		installer := &stubInstaller{err: fmt.Errorf("apt exploded")}
		strategy := NewInstallStrategy(installer, accept, nil)
		if _, err := strategy.Candidates(); err == nil {
			t.Error("Candidates() expected error when the install fails")
		}
	})
}

type stubInstaller struct {
	called bool
	err    error
}

func (s *stubInstaller) Name() string { return "stub" }

func (s *stubInstaller) InstallPython() error {
	s.called = true
	return s.err
}
