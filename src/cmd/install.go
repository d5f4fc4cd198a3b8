package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/strucureo/inity-setup/src/internal/cleaner"
	"github.com/strucureo/inity-setup/src/internal/config"
	"github.com/strucureo/inity-setup/src/internal/envbuilder"
	"github.com/strucureo/inity-setup/src/internal/launcher"
	"github.com/strucureo/inity-setup/src/internal/manifest"
	"github.com/strucureo/inity-setup/src/internal/path"
	"github.com/strucureo/inity-setup/src/internal/pkgmanager"
	"github.com/strucureo/inity-setup/src/internal/python"
	"github.com/strucureo/inity-setup/src/internal/selftest"
	"github.com/strucureo/inity-setup/src/internal/source"
	"github.com/strucureo/inity-setup/src/internal/tui"
	"github.com/strucureo/inity-setup/src/internal/ui"
)

var (
	installYesFlag    bool
	installSourceFlag string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install inity into a fresh isolated environment",
	Long: `Install inity on this machine.

The installer:
  1. Locates a Python ` + python.Floor.String() + `+ interpreter (or offers to install one)
  2. Removes any previous inity installation (clean slate, no in-place upgrade)
  3. Creates an isolated environment at ~/.inity/env and installs inity into it
  4. Writes an 'inity' launcher to a directory on your PATH
  5. Runs an advisory self-test

Examples:
  inity-setup install
  inity-setup install --yes             # Skip all confirmation prompts
  inity-setup install --source ./inity  # Install from a local working copy`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInstall(); err != nil {
			ui.Error("%v", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().BoolVarP(&installYesFlag, "yes", "y", false, "Skip confirmation prompts")
	installCmd.Flags().StringVar(&installSourceFlag, "source", "", "Install from a local source working copy instead of cloning")
}

// runInstall drives the whole bootstrap pipeline, strictly sequentially
func runInstall() error {
	ui.Header("Installing inity...")

	if err := config.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to create inity directories: %w", err)
	}

	paths := config.DefaultPaths()
	binDirs := path.CandidateBinDirs()

	// Step 1: locate a compatible interpreter
	candidate, err := locatePython(binDirs)
	if err != nil {
		ui.Error("No compatible Python interpreter could be found or installed")
		ui.Info("%s", pkgmanager.ManualInstructions())
		ui.Info("Then re-run: inity-setup install")
		return err
	}
	ui.Success("Using %s", candidate)

	// A scanned interpreter works by absolute path; registering its
	// directory is a separate, purely interactive offer
	offerInterpreterPathRegistration(candidate)

	// Step 2: clean slate before creating anything
	ui.Progress("Removing artifacts from previous installs...")
	cleaner.RemovePrior(paths.Env, binDirs, candidate.Path)

	// Step 3: choose the launcher install directory and freeze the plan
	binDir, err := path.ChooseBinDir()
	if err != nil {
		return err
	}
	ui.Debug("install directory: %s", binDir)

	plan := config.Plan{
		PythonPath:    candidate.Path,
		PythonVersion: candidate.Version.String(),
		PythonSource:  candidate.Source,
		EnvDir:        paths.Env,
		BinDir:        binDir,
	}

	// Step 4: register the install directory on the PATH. Persisting is
	// consent-gated and declining is fine; the process PATH is always
	// updated so the self-test can resolve the launcher.
	if err := path.AddToPath(plan.BinDir, installYesFlag); err != nil {
		ui.Warning("Could not persist PATH change: %v", err)
		ui.Info("You can add %s to your PATH manually", plan.BinDir)
	}
	if err := path.PrependProcessPath(plan.BinDir); err != nil {
		ui.Debug("could not update process PATH: %v", err)
	}

	// Step 5: acquire the application source
	workDir := installSourceFlag
	if workDir == "" {
		workDir, err = source.Acquire(paths.Cache)
		if err != nil {
			return err
		}
	} else {
		ui.Info("Installing from local source: %s", workDir)
	}

	// Step 6: build the isolated environment
	m, err := manifest.Load(config.ManifestOverridePath())
	if err != nil {
		return err
	}

	builder := envbuilder.New(plan, consent)
	if err := builder.Build(m.Requirements(), workDir); err != nil {
		return err
	}

	// Step 7: write the launcher
	launcherPath, err := launcher.Write(plan)
	if err != nil {
		return err
	}
	ui.Success("Launcher installed: %s", launcherPath)

	// Step 8: advisory self-test; never affects the exit status
	selftest.Run(launcherPath)

	summary := fmt.Sprintf("inity installed successfully\n\nPython:      %s (%s)\nEnvironment: %s\nLauncher:    %s",
		tui.RenderVersion(plan.PythonVersion), plan.PythonSource, plan.EnvDir, launcherPath)
	fmt.Println(tui.RenderSuccessBox(summary))
	ui.Info("Open a new terminal and run: inity --help")

	return nil
}

// locatePython runs the detection strategy ladder: search path, well-known
// directory scan, then a consent-gated package-manager install with a single
// re-detection.
func locatePython(excludeDirs []string) (python.Candidate, error) {
	lookup := []python.Strategy{
		python.NewPathStrategy(python.ExecProbe, excludeDirs),
		python.NewScanStrategy(python.ExecProbe, nil),
	}

	var installer python.Installer
	if mgr := pkgmanager.Detect(); mgr != nil {
		installer = mgr
	}

	strategies := append(lookup, python.NewInstallStrategy(installer, consent, lookup))

	return python.NewLocator(strategies...).Locate()
}

// offerInterpreterPathRegistration offers to put a scanned interpreter's
// directory on the persisted PATH. Never automatic: with --yes the offer is
// skipped entirely, and declining changes nothing.
func offerInterpreterPathRegistration(candidate python.Candidate) {
	if candidate.Source != python.SourceScan || installYesFlag {
		return
	}

	pythonDir := filepath.Dir(candidate.Path)
	if path.IsInPath(pythonDir) {
		return
	}

	ui.Info("Python was found at %s, outside your PATH", candidate.Path)
	ui.Info("The installer will use it by absolute path either way")
	if !promptYesNo(fmt.Sprintf("Add %s to your PATH as well?", pythonDir), false) {
		return
	}

	if err := path.AddToPath(pythonDir, true); err != nil {
		ui.Warning("Could not add %s to PATH: %v", pythonDir, err)
	}
}

// consent gates the steps that modify the host outside ~/.inity
func consent(prompt string) bool {
	if installYesFlag {
		return true
	}
	return promptYesNo(prompt, false)
}
