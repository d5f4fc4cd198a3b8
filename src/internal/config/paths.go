// Package config manages inity-setup paths and the immutable install plan
package config

import (
	"os"
	"path/filepath"
	"sync"
)

// Paths holds all important inity directory paths
type Paths struct {
	Root  string // Root inity directory (~/.inity)
	Env   string // Isolated environment directory (~/.inity/env)
	Cache string // Cache directory for source checkouts and archives (~/.inity/cache)
}

var (
	defaultPaths *Paths
	pathsOnce    sync.Once
)

// DefaultPaths returns the default inity paths.
// This function is thread-safe and guarantees single initialization.
func DefaultPaths() *Paths {
	pathsOnce.Do(func() {
		defaultPaths = initPaths()
	})
	return defaultPaths
}

// initPaths initializes the default paths
func initPaths() *Paths {
	root := getRootDir()
	return &Paths{
		Root:  root,
		Env:   filepath.Join(root, "env"),
		Cache: filepath.Join(root, "cache"),
	}
}

// getRootDir returns the root inity directory
func getRootDir() string {
	// Check for INITY_ROOT environment variable first
	if root := os.Getenv("INITY_ROOT"); root != "" {
		return root
	}

	// Use home directory
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home is not available
		return ".inity"
	}

	return filepath.Join(home, ".inity")
}

// ManifestOverridePath returns the path to the optional user manifest file.
// When present it replaces the embedded dependency manifest.
func ManifestOverridePath() string {
	return filepath.Join(DefaultPaths().Root, "manifest.yaml")
}

// EnsureDirectories creates all necessary inity directories
func EnsureDirectories() error {
	paths := DefaultPaths()
	dirs := []string{
		paths.Root,
		paths.Cache,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}

// ResetPathsCache resets the cached paths, forcing reinitialization on next access.
// This is primarily useful for testing.
func ResetPathsCache() {
	pathsOnce = sync.Once{}
	defaultPaths = nil
}
