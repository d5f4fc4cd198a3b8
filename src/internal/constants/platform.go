// Package constants defines common constants used across inity-setup
package constants

// Operating systems
const (
	OSWindows = "windows"
	OSDarwin  = "darwin"
	OSLinux   = "linux"
)

// Shell types
const (
	ShellBash = "bash"
	ShellZsh  = "zsh"
	ShellFish = "fish"
)

// User responses
const (
	ResponseYes = "yes"
	ResponseY   = "y"
	ResponseNo  = "no"
	ResponseN   = "n"
)

// File extensions
const (
	ExtExe = ".exe"
	ExtCmd = ".cmd"
)

// LauncherName is the bare command name users invoke after installation
const LauncherName = "inity"

// PackageName is the name the application is registered under in pip
const PackageName = "inity"
