// Package manifest holds the application's declared dependency set.
//
// The default manifest is embedded in the binary; a file at
// ~/.inity/manifest.yaml replaces it entirely when present. Entries are
// consumed verbatim by the environment builder.
package manifest

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var embeddedManifest []byte

// Dependency is a single package name/version-constraint pair
type Dependency struct {
	Name       string `yaml:"name"`
	Constraint string `yaml:"constraint,omitempty"`
}

// Requirement renders the dependency as a pip requirement specifier
func (d Dependency) Requirement() string {
	return d.Name + d.Constraint
}

// Manifest is the flat list of dependencies the application declares
type Manifest struct {
	Dependencies []Dependency `yaml:"dependencies"`
}

// Requirements returns all dependencies as pip requirement specifiers,
// in declaration order
func (m *Manifest) Requirements() []string {
	reqs := make([]string, 0, len(m.Dependencies))
	for _, d := range m.Dependencies {
		reqs = append(reqs, d.Requirement())
	}
	return reqs
}

// Load returns the manifest from overridePath when the file exists, falling
// back to the embedded default. Pass "" to skip the override lookup.
// An override that exists but cannot be read is an error, never a silent
// fallback.
func Load(overridePath string) (*Manifest, error) {
	data := embeddedManifest

	if overridePath != "" {
		fileData, err := os.ReadFile(overridePath)
		switch {
		case err == nil:
			data = fileData
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read manifest override %s: %w", overridePath, err)
		}
	}

	return Parse(data)
}

// Parse decodes manifest YAML
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	for _, d := range m.Dependencies {
		if d.Name == "" {
			return nil, fmt.Errorf("manifest contains a dependency with no name")
		}
	}

	return &m, nil
}
