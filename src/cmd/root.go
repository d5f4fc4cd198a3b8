// Package cmd implements the CLI commands for inity-setup
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/strucureo/inity-setup/src/internal/constants"
	"github.com/strucureo/inity-setup/src/internal/tui"
	"github.com/strucureo/inity-setup/src/internal/ui"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "inity-setup",
	Short: "Bootstrap installer for the Inity project tool",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
	},
}

func Execute() {
	// Check for --version or -v flag before Cobra parses
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-v" {
			versionCmd.Run(versionCmd, []string{})
			return
		}
	}

	if err := rootCmd.Execute(); err != nil {
		// Error already printed by Cobra, just exit with error code
		os.Exit(1)
	}
}

func init() {
	// Hide the completion command until we implement it
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	// Add global verbose flag
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output for debugging")

	// Set custom usage and help functions with TUI table for commands
	rootCmd.SetUsageFunc(customUsage)
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		_ = customUsage(cmd)
	})
}

func customUsage(cmd *cobra.Command) error {
	const tableWidth = 95 // Consistent width for all tables

	// Print header box with title and description
	headerTable := tui.NewTable("")
	headerTable.SetTitle(cmd.Short)
	headerTable.HideHeader()
	headerTable.SetMinWidth(tableWidth)
	headerTable.AddRow("inity-setup bootstraps a working 'inity' command on Linux, MacOS, and Windows:")
	headerTable.AddRow("it finds (or installs) a compatible Python, builds an isolated environment, and")
	headerTable.AddRow("places a launcher on your PATH.")

	fmt.Println(headerTable.Render())
	fmt.Println()

	// Build commands table
	table := tui.NewTable("Command", "Description")
	table.SetTitle("Available Commands")
	table.SetMinWidth(tableWidth)

	for _, c := range cmd.Commands() {
		// Skip hidden commands and completion
		if c.Hidden || c.Name() == "completion" {
			continue
		}
		table.AddRow(c.Name(), c.Short)
	}

	fmt.Println(table.Render())

	return nil
}

// promptYesNo asks the user a yes/no question, returning def on empty input
func promptYesNo(question string, def bool) bool {
	suffix := "[y/N]"
	if def {
		suffix = "[Y/n]"
	}
	fmt.Printf("%s %s: ", question, suffix)

	var response string
	_, _ = fmt.Scanln(&response)
	response = strings.ToLower(strings.TrimSpace(response))

	if response == "" {
		return def
	}
	return response == constants.ResponseY || response == constants.ResponseYes
}
