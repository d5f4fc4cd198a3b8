package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateWorkingCopy(t *testing.T) {
	tests := []struct {
		name    string
		files   []string
		wantErr bool
	}{
		{"setup.py build", []string{"setup.py", "smartenv/main.py"}, false},
		{"pyproject build", []string{"pyproject.toml"}, false},
		{"Both markers", []string{"setup.py", "pyproject.toml"}, false},
		{"No build marker", []string{"README.md"}, true},
		{"Empty tree", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workDir := t.TempDir()
			for _, f := range tt.files {
				p := filepath.Join(workDir, f)
				if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(p, []byte{}, 0644); err != nil {
					t.Fatal(err)
				}
			}

			err := validateWorkingCopy(workDir)
			if tt.wantErr && err == nil {
				t.Error("validateWorkingCopy() expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validateWorkingCopy() unexpected error: %v", err)
			}
		})
	}
}
