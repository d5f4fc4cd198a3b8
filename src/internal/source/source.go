// Package source acquires a working copy of the application source.
//
// A shallow git clone is preferred; when no git client is available the
// branch archive is downloaded and extracted instead. Both paths produce the
// same working-copy layout.
package source

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/strucureo/inity-setup/src/internal/download"
	"github.com/strucureo/inity-setup/src/internal/ui"
)

const (
	// RepoURL is the upstream repository of the inity application
	RepoURL = "https://github.com/strucureo/inity"

	// archiveURL is the snapshot of the default branch, used when git is absent
	archiveURL = "https://codeload.github.com/strucureo/inity/tar.gz/refs/heads/main"

	archiveName = "inity-main.tar.gz"
)

// Acquire produces a fresh working copy under cacheDir and returns its path.
// Any previous working copy in the cache is discarded first.
func Acquire(cacheDir string) (string, error) {
	workDir := filepath.Join(cacheDir, "src")

	// Always start clean; a half-cloned tree from an interrupted run would
	// otherwise poison the install
	if err := os.RemoveAll(workDir); err != nil {
		return "", fmt.Errorf("failed to clear previous working copy: %w", err)
	}

	if gitPath, err := exec.LookPath("git"); err == nil {
		ui.Debug("git client found at %s", gitPath)
		if err := cloneWithGit(gitPath, workDir); err != nil {
			return "", err
		}
	} else {
		ui.Info("No git client found, falling back to archive download")
		if err := downloadSnapshot(cacheDir, workDir); err != nil {
			return "", err
		}
	}

	return workDir, validateWorkingCopy(workDir)
}

// cloneWithGit performs a shallow clone of the default branch
func cloneWithGit(gitPath, workDir string) error {
	ui.Progress("Cloning %s", RepoURL)

	cmd := exec.Command(gitPath, "clone", "--depth", "1", RepoURL, workDir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git clone failed: %w\n%s", err, string(output))
	}

	return nil
}

// downloadSnapshot fetches and extracts the branch archive into workDir
func downloadSnapshot(cacheDir, workDir string) error {
	archivePath := filepath.Join(cacheDir, archiveName)
	defer func() { _ = os.Remove(archivePath) }()

	if err := download.File(archiveURL, archivePath); err != nil {
		return fmt.Errorf("failed to download source archive: %w", err)
	}

	if err := download.Extract(archivePath, workDir); err != nil {
		return fmt.Errorf("failed to extract source archive: %w", err)
	}

	// The archive wraps everything in a single inity-<ref> directory;
	// strip it so the layout matches a git clone
	if err := download.StripTopLevelDir(workDir); err != nil {
		return fmt.Errorf("failed to normalize source layout: %w", err)
	}

	return nil
}

// validateWorkingCopy checks that the tree looks like an installable package
func validateWorkingCopy(workDir string) error {
	for _, marker := range []string{"setup.py", "pyproject.toml"} {
		if _, err := os.Stat(filepath.Join(workDir, marker)); err == nil {
			return nil
		}
	}
	return fmt.Errorf("working copy at %s has no setup.py or pyproject.toml", workDir)
}
