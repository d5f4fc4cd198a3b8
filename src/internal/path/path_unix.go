//go:build !windows

package path

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/strucureo/inity-setup/src/internal/constants"
	"github.com/strucureo/inity-setup/src/internal/ui"
)

// DetectShell returns the user's shell name (bash, zsh, fish, etc.)
func DetectShell() string {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return "unknown"
	}

	// Extract just the shell name from the path
	return filepath.Base(shell)
}

// GetShellConfigFile returns the config file path for the given shell
func GetShellConfigFile(shell string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	switch shell {
	case constants.ShellBash:
		// Prefer .bashrc if it exists, otherwise .bash_profile
		bashrc := filepath.Join(home, ".bashrc")
		if _, err := os.Stat(bashrc); err == nil {
			return bashrc
		}
		return filepath.Join(home, ".bash_profile")

	case constants.ShellZsh:
		return filepath.Join(home, ".zshrc")

	case constants.ShellFish:
		return filepath.Join(home, ".config", "fish", "config.fish")

	default:
		// Try .profile as a fallback
		return filepath.Join(home, ".profile")
	}
}

// AddToPath persists a directory onto the user's PATH by appending to their
// shell config. The user is prompted first unless assumeYes is set; declining
// is not an error.
func AddToPath(dir string, assumeYes bool) error {
	shell := DetectShell()
	if shell == "unknown" {
		return fmt.Errorf("could not detect shell - please add %s to your PATH manually", dir)
	}

	configFile := GetShellConfigFile(shell)
	if configFile == "" {
		return fmt.Errorf("could not determine config file for shell %s", shell)
	}

	// Check if the directory is already in PATH
	if IsInPath(dir) {
		ui.Info("%s is already in your PATH", dir)
		return nil
	}

	// Check if the config file already contains the PATH modification
	if containsPathModification(configFile, dir) {
		ui.Warning("PATH modification already exists in %s, but not active in current shell", configFile)
		ui.Info("Please restart your terminal or run: source %s", configFile)
		return nil
	}

	exportLine := exportStatement(shell, dir)

	if !assumeYes {
		ui.Header("PATH Setup Required")
		ui.Info("inity-setup needs to add the install directory to your PATH")
		ui.Info("Shell: %s", ui.Highlight(shell))
		ui.Info("Config file: %s", ui.Highlight(configFile))
		ui.Info("Will append: %s", ui.Highlight(strings.TrimSpace(exportLine)))
		fmt.Printf("\nProceed? [Y/n]: ")

		var response string
		_, _ = fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "" && response != constants.ResponseY && response != constants.ResponseYes {
			ui.Warning("PATH not modified. Please add this manually to your %s:", configFile)
			ui.Info("%s", strings.TrimSpace(exportLine))
			return nil
		}
	}

	// Ensure the directory exists for fish config
	if shell == constants.ShellFish {
		configDir := filepath.Dir(configFile)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	// Append to the config file
	f, err := os.OpenFile(configFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(exportLine); err != nil {
		return fmt.Errorf("failed to write to config file: %w", err)
	}

	ui.Success("Added %s to PATH in %s", dir, configFile)
	ui.Warning("Please restart your terminal or run: source %s", configFile)

	return nil
}

// exportStatement builds the marker-tagged PATH line for a shell
func exportStatement(shell, dir string) string {
	if shell == constants.ShellFish {
		return fmt.Sprintf("\n%s\nset -gx PATH \"%s\" $PATH\n", Marker, dir)
	}
	return fmt.Sprintf("\n%s\nexport PATH=\"%s:$PATH\"\n", Marker, dir)
}

// RemoveFromPath strips the marker-tagged PATH lines for a directory from
// every known shell config file. Best effort: files we cannot rewrite are
// reported but do not fail the operation.
func RemoveFromPath(dir string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configFiles := []string{
		filepath.Join(home, ".bashrc"),
		filepath.Join(home, ".bash_profile"),
		filepath.Join(home, ".zshrc"),
		filepath.Join(home, ".config", "fish", "config.fish"),
		filepath.Join(home, ".profile"),
	}

	for _, configFile := range configFiles {
		content, err := os.ReadFile(configFile)
		if err != nil {
			continue
		}

		cleaned, changed := StripPathEntry(string(content), dir)
		if !changed {
			continue
		}

		if err := os.WriteFile(configFile, []byte(cleaned), 0644); err != nil {
			ui.Warning("Could not update %s: %v", configFile, err)
			continue
		}

		ui.Info("Removed PATH entry from %s", configFile)
	}

	return nil
}

// StripPathEntry removes the marker line together with the PATH line that
// follows it, but only when that line references dir. Marker blocks for other
// directories are left intact so removal passes for each install directory
// never strand each other's entries. Returns the cleaned content and whether
// anything was removed.
func StripPathEntry(content, dir string) (string, bool) {
	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))
	changed := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == Marker &&
			i+1 < len(lines) && strings.Contains(lines[i+1], dir) {
			// Drop the marker and its PATH line as a unit
			i++
			changed = true
			continue
		}
		kept = append(kept, line)
	}

	if !changed {
		return content, false
	}

	return strings.Join(kept, "\n"), true
}

// containsPathModification checks if the config file already has our PATH line
func containsPathModification(configFile, dir string) bool {
	f, err := os.Open(configFile)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		// Check if line mentions both our directory and PATH
		if strings.Contains(line, dir) && (strings.Contains(line, "PATH") || strings.Contains(line, "path")) {
			return true
		}
	}

	return false
}
