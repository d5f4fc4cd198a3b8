package pkgmanager

import (
	"strings"
	"testing"
)

func TestManagersFor(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		wantOrder []string
	}{
		{"Windows prefers winget", "windows", []string{"winget", "choco"}},
		{"Darwin uses brew", "darwin", []string{"brew"}},
		{"Linux priority order", "linux", []string{"apt", "dnf", "yum", "pacman", "zypper"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			managers := managersFor(tt.goos)

			if len(managers) != len(tt.wantOrder) {
				t.Fatalf("managersFor(%q) returned %d managers, want %d", tt.goos, len(managers), len(tt.wantOrder))
			}
			for i, m := range managers {
				if m.Name() != tt.wantOrder[i] {
					t.Errorf("managersFor(%q)[%d] = %s, want %s", tt.goos, i, m.Name(), tt.wantOrder[i])
				}
			}
		})
	}
}

func TestManagersHaveCommands(t *testing.T) {
	for _, goos := range []string{"windows", "darwin", "linux"} {
		for _, m := range managersFor(goos) {
			if len(m.commands) == 0 {
				t.Errorf("%s/%s has no install commands", goos, m.Name())
				continue
			}
			for _, args := range m.commands {
				if len(args) == 0 {
					t.Errorf("%s/%s has an empty command", goos, m.Name())
				}
			}
		}
	}
}

func TestAptInstallsVenvSupport(t *testing.T) {
	// Debian splits venv out of the python3 package, so the apt recipe must
	// pull it in up front
	for _, m := range managersFor("linux") {
		if m.Name() != "apt" {
			continue
		}

		joined := ""
		for _, args := range m.commands {
			joined += " " + strings.Join(args, " ")
		}

		for _, pkg := range []string{"python3", "python3-venv", "python3-pip"} {
			if !strings.Contains(joined, pkg) {
				t.Errorf("apt recipe %q does not install %s", joined, pkg)
			}
		}
		return
	}
	t.Fatal("no apt manager found for linux")
}

func TestManualInstructions(t *testing.T) {
	got := ManualInstructions()

	if got == "" {
		t.Fatal("ManualInstructions() returned empty string")
	}
	if !strings.Contains(got, "To install Python manually") {
		t.Errorf("ManualInstructions() = %q, missing preamble", got)
	}
}
