// Package pkgmanager drives OS package managers for runtime installation.
//
// Managers are tried in a fixed priority order per platform. All invocations
// are blocking subprocess calls; output is surfaced on failure.
package pkgmanager

import (
	"fmt"
	"os"
	"os/exec"
	goruntime "runtime"

	"github.com/strucureo/inity-setup/src/internal/constants"
	"github.com/strucureo/inity-setup/src/internal/ui"
)

// Manager is a detected OS package manager and its Python install recipe
type Manager struct {
	name     string
	commands [][]string // Commands run in sequence to install Python
}

// Name returns the package manager name (e.g., "apt", "brew")
func (m *Manager) Name() string {
	return m.name
}

// InstallPython runs the manager's install commands to completion
func (m *Manager) InstallPython() error {
	for _, args := range m.commands {
		if err := run(args); err != nil {
			return err
		}
	}
	return nil
}

// managersFor returns the candidate managers for an OS in priority order.
// The binary name checked on the search path is always commands[0][0] after
// any sudo prefix is stripped.
func managersFor(goos string) []*Manager {
	switch goos {
	case constants.OSWindows:
		return []*Manager{
			{name: "winget", commands: [][]string{
				{"winget", "install", "-e", "--id", "Python.Python.3.12",
					"--accept-source-agreements", "--accept-package-agreements"},
			}},
			{name: "choco", commands: [][]string{
				{"choco", "install", "-y", "python3"},
			}},
		}
	case constants.OSDarwin:
		return []*Manager{
			{name: "brew", commands: [][]string{
				{"brew", "install", "python@3.12"},
			}},
		}
	default:
		return []*Manager{
			{name: "apt", commands: [][]string{
				sudo("apt-get", "update"),
				sudo("apt-get", "install", "-y", "python3", "python3-venv", "python3-pip"),
			}},
			{name: "dnf", commands: [][]string{
				sudo("dnf", "install", "-y", "python3"),
			}},
			{name: "yum", commands: [][]string{
				sudo("yum", "install", "-y", "python3"),
			}},
			{name: "pacman", commands: [][]string{
				sudo("pacman", "-S", "--noconfirm", "python"),
			}},
			{name: "zypper", commands: [][]string{
				sudo("zypper", "install", "-y", "python3"),
			}},
		}
	}
}

// Detect returns the first available package manager for this host, or nil
func Detect() *Manager {
	for _, m := range managersFor(goruntime.GOOS) {
		binary := m.commands[0][0]
		if binary == "sudo" {
			binary = m.commands[0][1]
		}
		// apt-get detection maps back to the apt manager name
		if _, err := exec.LookPath(binary); err == nil {
			ui.Debug("detected package manager: %s", m.name)
			return m
		}
	}
	return nil
}

// InstallDebianVenvPackage installs the python3-venv OS component required
// for venv creation on Debian-family hosts. Returns an error on other hosts.
func InstallDebianVenvPackage() error {
	if _, err := exec.LookPath("apt-get"); err != nil {
		return fmt.Errorf("apt-get not available: %w", err)
	}
	return run(sudo("apt-get", "install", "-y", "python3-venv"))
}

// ManualInstructions returns OS-specific commands for installing Python by hand
func ManualInstructions() string {
	switch goruntime.GOOS {
	case constants.OSWindows:
		return "To install Python manually:\n" +
			"  winget install -e --id Python.Python.3.12\n" +
			"  Or download the installer from https://www.python.org/downloads/"
	case constants.OSDarwin:
		return "To install Python manually:\n" +
			"  brew install python@3.12\n" +
			"  Or download the installer from https://www.python.org/downloads/"
	default:
		return "To install Python manually:\n" +
			"  Debian/Ubuntu: sudo apt-get install -y python3 python3-venv python3-pip\n" +
			"  Fedora:        sudo dnf install -y python3\n" +
			"  Arch:          sudo pacman -S python\n" +
			"  openSUSE:      sudo zypper install -y python3"
	}
}

// sudo prefixes a command with sudo unless already running as root
func sudo(args ...string) []string {
	if os.Geteuid() == 0 {
		return args
	}
	return append([]string{"sudo"}, args...)
}

// run executes a command, inheriting stdio so sudo prompts and package
// manager progress stay visible
func run(args []string) error {
	ui.Debug("running: %v", args)
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%v failed: %w", args, err)
	}
	return nil
}
