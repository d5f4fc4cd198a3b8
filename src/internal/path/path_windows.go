//go:build windows

package path

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
	"unsafe"

	"github.com/strucureo/inity-setup/src/internal/constants"
	"github.com/strucureo/inity-setup/src/internal/ui"
	"golang.org/x/sys/windows/registry"
)

var (
	moduser32              = syscall.NewLazyDLL("user32.dll")
	procSendMessageTimeout = moduser32.NewProc("SendMessageTimeoutW")
)

const (
	HWND_BROADCAST   = 0xffff
	WM_SETTINGCHANGE = 0x001A
	SMTO_ABORTIFHUNG = 0x0002
)

// AddToPath persists a directory onto the user PATH via the registry.
// The user is prompted first unless assumeYes is set; declining is not an
// error.
func AddToPath(dir string, assumeYes bool) error {
	// Check if already in PATH
	if IsInPath(dir) {
		ui.Info("%s is already in your PATH", dir)
		return nil
	}

	if !assumeYes {
		ui.Header("PATH Setup Required")
		ui.Info("inity-setup needs to add the install directory to your PATH")
		ui.Info("Directory: %s", ui.Highlight(dir))
		ui.Info("This will modify your user PATH environment variable")
		fmt.Printf("\nProceed? [Y/n]: ")

		var response string
		_, _ = fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "" && response != constants.ResponseY && response != constants.ResponseYes {
			ui.Warning("PATH not modified. You can add %s manually later", dir)
			return nil
		}
	}

	// Get current user PATH from registry
	key, err := registry.OpenKey(registry.CURRENT_USER, `Environment`, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open registry key: %w", err)
	}
	defer func() { _ = key.Close() }()

	currentPath, _, err := key.GetStringValue("Path")
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("failed to read current PATH: %w", err)
	}

	// Check if already present (double-check)
	paths := strings.Split(currentPath, ";")
	for _, p := range paths {
		if strings.EqualFold(strings.TrimSpace(p), dir) {
			ui.Info("%s is already in your registry PATH", dir)
			return nil
		}
	}

	// Prepend the install directory to the BEGINNING for priority
	newPath := dir
	if currentPath != "" {
		newPath += ";" + currentPath
	}

	// Write back to registry
	err = key.SetStringValue("Path", newPath)
	if err != nil {
		return fmt.Errorf("failed to update PATH in registry: %w", err)
	}

	// Broadcast WM_SETTINGCHANGE to notify running processes
	broadcastSettingChange()

	ui.Success("Added %s to your PATH", dir)
	ui.Warning("Please restart your terminal for the changes to take effect")

	return nil
}

// RemoveFromPath removes a directory from the persisted user PATH
func RemoveFromPath(dir string) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, `Environment`, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open registry key: %w", err)
	}
	defer func() { _ = key.Close() }()

	currentPath, _, err := key.GetStringValue("Path")
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read current PATH: %w", err)
	}

	paths := strings.Split(currentPath, ";")
	kept := make([]string, 0, len(paths))
	removed := false
	for _, p := range paths {
		if strings.EqualFold(strings.TrimSpace(p), dir) {
			removed = true
			continue
		}
		kept = append(kept, p)
	}

	if !removed {
		return nil
	}

	if err := key.SetStringValue("Path", strings.Join(kept, ";")); err != nil {
		return fmt.Errorf("failed to update PATH in registry: %w", err)
	}

	broadcastSettingChange()
	ui.Info("Removed %s from your PATH", dir)

	return nil
}

// broadcastSettingChange broadcasts WM_SETTINGCHANGE to notify the system of environment changes
func broadcastSettingChange() {
	env := syscall.StringToUTF16Ptr("Environment")
	_, _, _ = procSendMessageTimeout.Call(
		uintptr(HWND_BROADCAST),
		uintptr(WM_SETTINGCHANGE),
		0,
		uintptr(unsafe.Pointer(env)),
		uintptr(SMTO_ABORTIFHUNG),
		5000, // 5 second timeout
		0,
	)
}

// DetectShell returns "powershell" or "cmd" on Windows (for display only)
func DetectShell() string {
	// Check if running in PowerShell
	if os.Getenv("PSModulePath") != "" {
		return "powershell"
	}
	return "cmd"
}

// GetShellConfigFile returns empty string on Windows (no shell config files)
func GetShellConfigFile(shell string) string {
	// Windows doesn't use shell config files for PATH
	return ""
}
