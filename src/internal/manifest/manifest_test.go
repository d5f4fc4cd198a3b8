package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantReqs []string
		wantErr  bool
	}{
		{
			name: "Names and constraints",
			yaml: `dependencies:
  - name: typer[all]
    constraint: ">=0.9.0"
  - name: rich
    constraint: ">=13.0.0"
`,
			wantReqs: []string{"typer[all]>=0.9.0", "rich>=13.0.0"},
		},
		{
			name: "Constraint is optional",
			yaml: `dependencies:
  - name: rich
`,
			wantReqs: []string{"rich"},
		},
		{
			name:     "Empty manifest",
			yaml:     `dependencies: []`,
			wantReqs: []string{},
		},
		{
			name: "Unnamed dependency is rejected",
			yaml: `dependencies:
  - constraint: ">=1.0"
`,
			wantErr: true,
		},
		{
			name:    "Invalid yaml is rejected",
			yaml:    "dependencies: [unclosed",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				if err == nil {
					t.Error("Parse() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}

			got := m.Requirements()
			if len(got) != len(tt.wantReqs) {
				t.Fatalf("Requirements() = %v, want %v", got, tt.wantReqs)
			}
			for i := range got {
				if got[i] != tt.wantReqs[i] {
					t.Errorf("Requirements()[%d] = %q, want %q", i, got[i], tt.wantReqs[i])
				}
			}
		})
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	m, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") unexpected error: %v", err)
	}

	reqs := m.Requirements()
	if len(reqs) == 0 {
		t.Fatal("embedded manifest declares no dependencies")
	}

	// The application's core dependencies must be present
	want := map[string]bool{
		"typer[all]>=0.9.0":   false,
		"rich>=13.0.0":        false,
		"questionary>=1.10.0": false,
		"gitpython>=3.1.0":    false,
	}
	for _, r := range reqs {
		if _, ok := want[r]; ok {
			want[r] = true
		}
	}
	for r, found := range want {
		if !found {
			t.Errorf("embedded manifest missing %q (have %v)", r, reqs)
		}
	}
}

func TestLoadOverride(t *testing.T) {
	t.Run("Override file replaces the embedded manifest", func(t *testing.T) {
		override := filepath.Join(t.TempDir(), "manifest.yaml")
		content := "dependencies:\n  - name: rich\n    constraint: \"==13.7.0\"\n"
		if err := os.WriteFile(override, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		m, err := Load(override)
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}

		reqs := m.Requirements()
		if len(reqs) != 1 || reqs[0] != "rich==13.7.0" {
			t.Errorf("Requirements() = %v, want [rich==13.7.0]", reqs)
		}
	})

	t.Run("Missing override falls back to embedded", func(t *testing.T) {
		m, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if len(m.Requirements()) == 0 {
			t.Error("fallback manifest declares no dependencies")
		}
	})

	t.Run("Unreadable override is an error, not a fallback", func(t *testing.T) {
		// A directory at the override path fails the read without being
		// a not-exist error
		if _, err := Load(t.TempDir()); err == nil {
			t.Error("Load() on an unreadable override expected error, got nil")
		}
	})
}
