package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/strucureo/inity-setup/src/internal/cleaner"
	"github.com/strucureo/inity-setup/src/internal/config"
	"github.com/strucureo/inity-setup/src/internal/path"
	"github.com/strucureo/inity-setup/src/internal/ui"
)

var uninstallYesFlag bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove inity and everything this installer created",
	Long: `Uninstall inity from this machine.

This removes:
  - The isolated environment at ~/.inity
  - The 'inity' launcher from every install directory
  - The PATH entries this installer added for itself

A Python interpreter installed by your system's package manager is never
touched.

Examples:
  inity-setup uninstall
  inity-setup uninstall --yes`,
	Run: func(cmd *cobra.Command, args []string) {
		runUninstall()
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
	uninstallCmd.Flags().BoolVarP(&uninstallYesFlag, "yes", "y", false, "Skip confirmation prompt")
}

func runUninstall() {
	paths := config.DefaultPaths()
	binDirs := path.CandidateBinDirs()

	ui.Header("Uninstalling inity...")

	if !uninstallYesFlag {
		fmt.Printf("\n")
		ui.Warning("This will permanently delete:")
		ui.Info("  %s", paths.Root)
		ui.Info("  the 'inity' launcher from %v", binDirs)

		if !promptYesNo("\nAre you sure you want to uninstall inity?", false) {
			ui.Info("Uninstall canceled")
			return
		}
	}

	spinner := ui.NewSpinner("Removing inity...")
	spinner.Start()

	cleaner.RemoveEnvironment(paths.Env)
	cleaner.RemoveLaunchers(binDirs)
	cleaner.RemovePathEntries(binDirs)

	// Drop the whole ~/.inity tree, cache included
	if err := os.RemoveAll(paths.Root); err != nil {
		spinner.Warning("Could not fully remove " + paths.Root)
		ui.Warning("%v", err)
	} else {
		spinner.Success("inity removed")
	}

	ui.Info("Your Python installation was left untouched")
	ui.Success("Uninstall complete")
}
