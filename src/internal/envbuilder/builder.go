// Package envbuilder constructs the isolated Python environment and installs
// the application into it
package envbuilder

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/strucureo/inity-setup/src/internal/config"
	"github.com/strucureo/inity-setup/src/internal/ui"
)

// Builder creates the isolated environment described by an install plan
type Builder struct {
	plan config.Plan

	// consent asks the user before the one OS-level remediation we attempt
	consent func(prompt string) bool

	// runVenv and classify are swapped out in tests; defaults run the real
	// interpreter and the platform failure classifier
	runVenv  func() (string, error)
	classify func(output string) *remediation
}

// New creates a builder for the given plan
func New(plan config.Plan, consent func(prompt string) bool) *Builder {
	b := &Builder{plan: plan, consent: consent}
	b.runVenv = b.execVenv
	b.classify = classifyVenvFailure
	return b
}

// Build creates a fresh environment, upgrades pip, installs the declared
// requirements verbatim, and installs the application from workDir.
// Every step is a blocking subprocess run to completion.
func (b *Builder) Build(requirements []string, workDir string) error {
	if err := b.createEnv(); err != nil {
		return err
	}

	steps := []struct {
		message string
		args    []string
	}{
		{"Upgrading pip", []string{"-m", "pip", "install", "--upgrade", "pip"}},
		{"Installing dependencies", append([]string{"-m", "pip", "install"}, requirements...)},
		{"Installing inity", []string{"-m", "pip", "install", workDir}},
	}

	for _, step := range steps {
		spinner := ui.NewSpinner(step.message + "...")
		spinner.Start()

		if output, err := b.runEnvPython(step.args...); err != nil {
			spinner.Error(step.message + " failed")
			return fmt.Errorf("%s failed: %w\n%s", step.message, err, output)
		}

		spinner.Success(step.message)
	}

	return nil
}

// createEnv runs `python -m venv`, attempting exactly one targeted
// remediation and retry when creation fails for a recognized cause
func (b *Builder) createEnv() error {
	if err := os.MkdirAll(filepath.Dir(b.plan.EnvDir), 0755); err != nil {
		return fmt.Errorf("failed to create environment parent directory: %w", err)
	}

	spinner := ui.NewSpinner("Creating isolated environment...")
	spinner.Start()

	output, err := b.runVenv()
	if err == nil {
		spinner.Success("Isolated environment created")
		return nil
	}
	spinner.Error("Environment creation failed")

	remedy := b.classify(output)
	if remedy == nil {
		return fmt.Errorf("failed to create environment: %w\n%s", err, output)
	}

	ui.Warning("Environment creation failed: %s", remedy.cause)
	if !b.consent(remedy.prompt) {
		return fmt.Errorf("failed to create environment: %w\n%s", err, output)
	}

	if remErr := remedy.apply(); remErr != nil {
		return fmt.Errorf("remediation failed: %w", remErr)
	}

	// Exactly one retry after remediation
	spinner = ui.NewSpinner("Retrying environment creation...")
	spinner.Start()

	output, err = b.runVenv()
	if err != nil {
		spinner.Error("Environment creation failed again")
		return fmt.Errorf("failed to create environment after remediation: %w\n%s", err, output)
	}

	spinner.Success("Isolated environment created")
	return nil
}

// execVenv invokes the detected interpreter to create the environment
func (b *Builder) execVenv() (string, error) {
	ui.Debug("running: %s -m venv %s", b.plan.PythonPath, b.plan.EnvDir)
	cmd := exec.Command(b.plan.PythonPath, "-m", "venv", b.plan.EnvDir)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// runEnvPython invokes the environment's own interpreter
func (b *Builder) runEnvPython(args ...string) (string, error) {
	envPython := b.plan.EnvPython()
	ui.Debug("running: %s %v", envPython, args)
	cmd := exec.Command(envPython, args...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}
